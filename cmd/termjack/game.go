package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/timberjack/common"
	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
	"github.com/milk9111/timberjack/ecs/entity"
	"github.com/milk9111/timberjack/ecs/system"
	"github.com/milk9111/timberjack/obj"
)

const (
	tickInterval = 16 * time.Millisecond
	// Terminals report key presses, not releases, so a move key holds for
	// this many ticks after its last repeat.
	holdTicks = 8
)

var (
	styleSky    = tcell.StyleDefault
	styleGround = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	styleTrunk  = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	styleLeaves = tcell.StyleDefault.Foreground(tcell.ColorForestGreen)
	styleTarget = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBoss   = tcell.StyleDefault.Foreground(tcell.ColorMaroon).Bold(true)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSweet  = tcell.StyleDefault.Background(tcell.ColorOlive)
	styleMarker = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type Game struct {
	screen    tcell.Screen
	forest    *entity.Forest
	scheduler *ecs.Scheduler
	shop      *system.ShopSystem

	leftHold  int
	rightHold int
	jump      bool
	interact  bool
	paused    bool
}

func NewGame(screen tcell.Screen, forest *entity.Forest, sound system.SoundPlayer) *Game {
	shop := system.NewShopSystem(forest.Catalog)
	return &Game{
		screen: screen,
		forest: forest,
		shop:   shop,
		scheduler: ecs.NewScheduler(
			system.NewPlayerControllerSystem(),
			shop,
			system.NewTreeSystem(),
			system.NewBossSystem(forest.Boss, forest.BossX),
			system.NewPopupSystem(),
			system.NewAudioSystem(sound),
		),
	}
}

func (g *Game) Run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.tick()
			g.draw()
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.leftHold, g.rightHold = holdTicks, 0
		case tcell.KeyRight:
			g.rightHold, g.leftHold = holdTicks, 0
		case tcell.KeyUp:
			g.jump = true
		case tcell.KeyRune:
			g.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleRune(r rune) {
	switch r {
	case 'a':
		g.leftHold, g.rightHold = holdTicks, 0
	case 'd':
		g.rightHold, g.leftHold = holdTicks, 0
	case 'w', ' ':
		g.jump = true
	case 'e', 'f':
		g.interact = true
	case 'p':
		g.paused = !g.paused
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		items := g.shop.Catalog().Items
		if i := int(r - '1'); i < len(items) {
			w := g.forest.World
			e := ecs.CreateEntity(w)
			_ = ecs.Add(w, e, component.ShopRequestComponent, &component.ShopRequest{Upgrade: items[i].Name})
		}
	}
}

func (g *Game) tick() {
	w := g.forest.World
	if e, ok := ecs.First(w, component.SessionComponent); ok {
		if sess, ok := ecs.Get(w, e, component.SessionComponent); ok {
			sess.Paused = g.paused
		}
	}

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		in.MoveLeft = g.leftHold > 0
		in.MoveRight = g.rightHold > 0
		in.JumpPressed = g.jump
		in.InteractPressed = g.interact
	})
	g.jump, g.interact = false, false
	if g.leftHold > 0 {
		g.leftHold--
	}
	if g.rightHold > 0 {
		g.rightHold--
	}

	g.scheduler.Update(w)
}

// cell maps canvas coordinates to a terminal cell.
func (g *Game) cell(x, y float64) (int, int) {
	cols, rows := g.screen.Size()
	return int(x * float64(cols) / common.BaseWidth), int(y * float64(rows) / common.BaseHeight)
}

func (g *Game) fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (g *Game) print(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) draw() {
	w := g.forest.World
	cols, rows := g.screen.Size()
	g.screen.Clear()
	g.fill(0, 0, cols-1, rows-1, ' ', styleSky)
	g.fill(0, rows-1, cols-1, rows-1, '=', styleGround)

	ecs.ForEach2(w, component.TreeComponent, component.TransformComponent, func(e ecs.Entity, tree *component.Tree, t *component.Transform) {
		x0, y0 := g.cell(t.X, t.Y)
		x1, y1 := g.cell(t.X+tree.Width, t.Y+tree.Height)
		x1 = max(x1-1, x0)
		y1 = min(y1-1, rows-2)
		if tree.Felled {
			g.fill(x0, y1, x1, y1, '_', styleTrunk)
			return
		}
		style := styleTrunk
		if ecs.Has(w, e, component.CutTargetComponent) {
			style = styleTarget
		}
		g.fill(x0, y0, x1, y1, '|', style)
		g.fill(x0-2, y0-2, x1+2, y0, '^', styleLeaves)
	})

	ecs.ForEach2(w, component.BossComponent, component.TransformComponent, func(e ecs.Entity, b *component.Boss, t *component.Transform) {
		x0, y0 := g.cell(t.X, t.Y)
		x1, y1 := g.cell(t.X+b.Width, t.Y+b.Height)
		g.fill(x0, y0, max(x1-1, x0), min(y1-1, rows-2), '#', styleBoss)
		g.print(x0, y0-1, b.Name, styleBoss)
	})

	p := g.forest.Player
	px0, py0 := g.cell(p.Pos.X, p.Pos.Y)
	px1, py1 := g.cell(p.Pos.X+p.Stats.Width, p.Pos.Y+p.Stats.Height)
	g.fill(px0, py0, max(px1-1, px0), min(py1-1, rows-2), '@', stylePlayer)
	axeX := px1
	if !p.FacingRight {
		axeX = px0 - 1
	}
	g.screen.SetContent(axeX, py0+1, axeGlyph(p), nil, stylePlayer)

	if cut, ok := p.Cutting(); ok {
		g.drawBar(px0, py0-2, p, cut)
	}

	ecs.ForEach2(w, component.PopupComponent, component.TransformComponent, func(_ ecs.Entity, pop *component.Popup, t *component.Transform) {
		if pop.Alpha < 0.2 {
			return
		}
		x, y := g.cell(t.X, t.Y)
		g.print(x-len(pop.Text)/2, y, pop.Text, styleHUD)
	})

	g.drawHUD()
	g.screen.Show()
}

// axeGlyph approximates the swing angle with a slash.
func axeGlyph(p *obj.Player) rune {
	a := p.SwingAngle()
	if !p.IsCutting() {
		a = 30
	}
	if !p.FacingRight {
		a = -a
	}
	switch {
	case math.Abs(a) < 15:
		return '-'
	case a > 0:
		return '\\'
	default:
		return '/'
	}
}

func (g *Game) drawBar(x, y int, p *obj.Player, cut obj.Cut) {
	const width = 20
	lo := int(p.Stats.SweetSpotMin / 100 * width)
	hi := int(p.Stats.SweetSpotMax / 100 * width)
	marker := int(math.Min(cut.Progress/100*width, width-1))
	for i := 0; i < width; i++ {
		style := styleHUD
		if i >= lo && i < hi {
			style = styleSweet
		}
		r := '-'
		if i == marker {
			r, style = '|', styleMarker
		}
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) drawHUD() {
	p := g.forest.Player
	lines := []string{
		fmt.Sprintf("$%d  trees %d  upgrades %v", p.Money, p.TreesCut, p.Upgrades()),
		"a/d move  w jump  e cut  p pause  esc quit",
	}
	shopLine := "shop:"
	for i, it := range g.shop.Catalog().Items {
		mark := ""
		if p.HasUpgrade(it.Name) {
			mark = "*"
		}
		shopLine += fmt.Sprintf("  %d) %s%s $%d", i+1, it.Title, mark, it.Cost)
	}
	lines = append(lines, shopLine)
	if g.paused {
		lines = append(lines, "PAUSED")
	}
	for i, line := range lines {
		g.print(1, i, line, styleHUD)
	}
}
