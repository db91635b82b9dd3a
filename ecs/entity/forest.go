package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
	"github.com/milk9111/timberjack/obj"
	"github.com/milk9111/timberjack/prefabs"
	"github.com/milk9111/timberjack/upgrades"
	"golang.org/x/image/colornames"
)

var defaultBossColor = color.RGBA{0x4A, 0x2C, 0x17, 0xff}

// NoStartMoney leaves the starting money to player.yaml.
const NoStartMoney = -1

type Options struct {
	// Forest is the forest prefab name; empty means forest.yaml.
	Forest string
	// StartMoney overrides player.yaml unless negative. Hosts pass
	// NoStartMoney when the flag is not given.
	StartMoney int
	Width      float64
	Height     float64
}

// Forest is a built scene: the world with its session, player and trees,
// plus what the host needs to wire systems.
type Forest struct {
	Name    string
	World   *ecs.World
	Player  *obj.Player
	Catalog *upgrades.Catalog

	Boss  component.Boss
	BossX float64

	Sky    color.Color
	Ground color.Color
}

func NewForest(opts Options) (*Forest, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	spec, err := prefabs.LoadForestSpec(opts.Forest)
	if err != nil {
		return nil, err
	}
	catalog, err := upgrades.LoadCatalog()
	if err != nil {
		return nil, err
	}

	stats := StatsFromSpec(playerSpec)
	if opts.StartMoney >= 0 {
		stats.StartMoney = opts.StartMoney
	}

	w := ecs.NewWorld()
	if _, err := NewSession(w, component.Session{
		Width:  opts.Width,
		Height: opts.Height,
		Tuning: upgrades.Tuning{
			Reach:        spec.Reach,
			RegrowFrames: spec.RegrowFrames,
		},
		BossEvery: spec.BossEvery,
	}); err != nil {
		return nil, err
	}

	player := obj.NewPlayer(stats, opts.Height)
	if _, err := NewPlayer(w, player); err != nil {
		return nil, err
	}

	for i, ts := range spec.Trees {
		if _, err := NewTree(w, ts.X, opts.Height, component.Tree{
			Width:  ts.Width,
			Height: ts.Height,
			Leaves: ts.Leaves.Or(colornames.Forestgreen),
		}); err != nil {
			return nil, fmt.Errorf("forest: tree %d: %w", i, err)
		}
	}

	return &Forest{
		Name:    spec.Name,
		World:   w,
		Player:  player,
		Catalog: catalog,
		Boss: component.Boss{
			Name:   spec.Boss.Name,
			Width:  spec.Boss.Width,
			Height: spec.Boss.Height,
			Color:  spec.Boss.Color.Or(defaultBossColor),
		},
		BossX:  spec.Boss.X,
		Sky:    spec.Sky.Or(colornames.Skyblue),
		Ground: spec.Ground.Or(colornames.Saddlebrown),
	}, nil
}

// StatsFromSpec overlays the fields set in the prefab on DefaultStats.
func StatsFromSpec(spec *prefabs.PlayerSpec) obj.Stats {
	stats := obj.DefaultStats()
	if spec == nil {
		return stats
	}
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&stats.Width, spec.Width)
	set(&stats.Height, spec.Height)
	set(&stats.StartX, spec.StartX)
	set(&stats.MoveSpeed, spec.MoveSpeed)
	set(&stats.Gravity, spec.Gravity)
	set(&stats.JumpForce, spec.JumpForce)
	set(&stats.CutRate, spec.CutRate)
	set(&stats.SwingStep, spec.SwingStep)
	set(&stats.SwingLimit, spec.SwingLimit)
	set(&stats.SweetSpotMin, spec.SweetSpotMin)
	set(&stats.SweetSpotMax, spec.SweetSpotMax)
	set(&stats.RewardMultiplier, spec.RewardMultiplier)
	if spec.StartMoney != nil {
		stats.StartMoney = *spec.StartMoney
	}
	return stats
}

// ReloadPlayerStats re-reads player.yaml and retunes p in place. Position,
// money and progress are kept.
func ReloadPlayerStats(p *obj.Player) error {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	p.Stats = StatsFromSpec(spec)
	return nil
}

func NewSession(w *ecs.World, sess component.Session) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent, &sess); err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}
	return e, nil
}

func NewPlayer(w *ecs.World, p *obj.Player) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerComponent, &component.Player{Actor: p}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: input: %w", err)
	}
	return e, nil
}

// NewTree plants a tree with its base on the ground of a canvas of the given
// height.
func NewTree(w *ecs.World, x, canvasHeight float64, tree component.Tree) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TreeComponent, &tree); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: canvasHeight - tree.Height}); err != nil {
		return 0, err
	}
	return e, nil
}
