package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/timberjack/audio"
	"github.com/milk9111/timberjack/common"
	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
	"github.com/milk9111/timberjack/ecs/entity"
	"github.com/milk9111/timberjack/ecs/system"
	"github.com/milk9111/timberjack/obj"
	"github.com/milk9111/timberjack/prefabs"
	"github.com/milk9111/timberjack/upgrades"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Forest     string
	Debug      bool
	StartMoney int
	Watch      bool
	Mute       bool
}

type Game struct {
	opts Options

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	hud       *system.HUDSystem
	shop      *system.ShopSystem
	player    *obj.Player

	watcher      *prefabs.Watcher
	seen         prefabs.Seen
	clipboardOK  bool
	shopOpen     bool
	paused       bool
	pauseUI      *ebitenui.UI
	shopUI       *ebitenui.UI
	shopUIDirty  bool
	status       string
	statusFrames int
	frames       int
}

func NewGame(opts Options) (*Game, error) {
	forest, err := entity.NewForest(entity.Options{
		Forest:     opts.Forest,
		StartMoney: opts.StartMoney,
		Width:      common.BaseWidth,
		Height:     common.BaseHeight,
	})
	if err != nil {
		return nil, err
	}

	var sound system.SoundPlayer
	if !opts.Mute {
		sound = audio.NewPlayer(audio.NewBank(), 0.5)
	}

	shop := system.NewShopSystem(forest.Catalog)
	g := &Game{
		opts:   opts,
		world:  forest.World,
		render: system.NewRenderSystem(forest.Sky, forest.Ground),
		hud:    system.NewHUDSystem(),
		shop:   shop,
		player: forest.Player,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(),
			system.NewPlayerControllerSystem(),
			shop,
			system.NewTreeSystem(),
			system.NewBossSystem(forest.Boss, forest.BossX),
			system.NewPopupSystem(),
			system.NewAudioSystem(sound),
		),
	}
	g.pauseUI = NewPauseUI(g)
	g.shopUIDirty = true

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = watcher
			g.seen = prefabs.Seen{}
		}
	}

	log.Printf("game: forest %q, boss %q at x=%.0f", forest.Name, forest.Boss.Name, forest.BossX)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	if g.statusFrames > 0 {
		g.statusFrames--
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.shopOpen {
			g.shopOpen = false
		} else {
			g.paused = !g.paused
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) && !g.paused {
		g.shopOpen = !g.shopOpen
		g.shopUIDirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copySnapshot()
	}

	if sess := g.session(); sess != nil {
		sess.Paused = g.paused || g.shopOpen
	}

	switch {
	case g.paused:
		g.pauseUI.Update()
	case g.shopOpen:
		if g.shopUIDirty || g.shopUI == nil {
			g.shopUI = NewShopUI(g)
			g.shopUIDirty = false
		}
		g.shopUI.Update()
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.hud.Draw(g.world, screen)

	if g.opts.Debug {
		snap := g.player.Snapshot()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  pos (%.1f, %.1f)  vy %.2f  progress %.0f",
			ebiten.ActualFPS(), snap.X, snap.Y, snap.VelocityY, snap.Progress), 12, common.BaseHeight-40)
	}
	if g.statusFrames > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, common.BaseWidth/2-80, 12)
	}

	switch {
	case g.paused:
		g.pauseUI.Draw(screen)
	case g.shopOpen && g.shopUI != nil:
		g.shopUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) session() *component.Session {
	e, ok := ecs.First(g.world, component.SessionComponent)
	if !ok {
		return nil
	}
	s, _ := ecs.Get(g.world, e, component.SessionComponent)
	return s
}

// requestPurchase queues a purchase for the shop system. It runs on the next
// scheduler pass even while the shop overlay pauses gameplay.
func (g *Game) requestPurchase(name string) {
	e := ecs.CreateEntity(g.world)
	_ = ecs.Add(g.world, e, component.ShopRequestComponent, &component.ShopRequest{Upgrade: name})
	g.shopUIDirty = true
}

func (g *Game) copySnapshot() {
	data, err := yaml.Marshal(g.player.Snapshot())
	if err != nil {
		log.Printf("snapshot: marshal: %v", err)
		return
	}
	if !g.clipboardOK {
		log.Printf("snapshot:\n%s", data)
		g.setStatus("snapshot logged")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("snapshot copied to clipboard")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusFrames = 120
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			g.reload(name)
		case err := <-g.watcher.Errors:
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if !g.seen.Changed(name) {
		return
	}
	switch name {
	case "upgrades.yaml":
		catalog, err := upgrades.LoadCatalog()
		if err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		g.shop.SetCatalog(catalog)
		g.shopUIDirty = true
		g.setStatus("shop reloaded")
		log.Printf("prefabs: reloaded %d upgrades", len(catalog.Items))
	case "player.yaml":
		if err := entity.ReloadPlayerStats(g.player); err != nil {
			log.Printf("prefabs: reload %s: %v", name, err)
			return
		}
		g.setStatus("player stats reloaded")
		log.Printf("prefabs: reloaded player stats")
	default:
		// Scripts are read on purchase. Forest layouts are built once per run.
		log.Printf("prefabs: %s changed", name)
	}
}
