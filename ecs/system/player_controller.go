package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
	"github.com/milk9111/timberjack/obj"
)

// PlayerControllerSystem feeds input into the lumberjack core: one physics
// tick, then jump and interact resolution. Interact begins a cut on the
// nearest standing tree or boss in reach, or resolves the cut in progress.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess := sessionOf(w)
	if sess == nil || sess.Paused {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent, component.InputComponent, func(e ecs.Entity, pc *component.Player, in *component.Input) {
		p := pc.Actor
		if p == nil {
			return
		}

		p.Update(obj.FrameInput{
			CanvasWidth:  sess.Width,
			CanvasHeight: sess.Height,
			MoveLeft:     in.MoveLeft,
			MoveRight:    in.MoveRight,
			SkillLevel:   sess.SkillLevel,
		})

		if in.JumpPressed && !p.Airborne {
			p.Jump()
			w.Events().Push(ecs.Event{Kind: ecs.EventJumped, Entity: e, X: p.Pos.X, Y: p.Pos.Y})
		}

		if in.InteractPressed {
			if p.IsCutting() {
				s.resolveCut(w, p)
			} else {
				s.beginCut(w, p, sess.Reach)
			}
		}
	})
}

func (s *PlayerControllerSystem) resolveCut(w *ecs.World, p *obj.Player) {
	target, hasTarget := ecs.First(w, component.CutTargetComponent)
	if hasTarget {
		ecs.Remove(w, target, component.CutTargetComponent)
	}

	success := p.AttemptCut()
	out := p.LastCut()
	evt := ecs.Event{
		Kind:   ecs.EventCutMissed,
		Entity: target,
		X:      p.Pos.X + p.Stats.Width/2,
		Y:      p.Pos.Y,
		Amount: out.Reward,
		Name:   out.Target.String(),
	}
	if success {
		evt.Kind = ecs.EventCutSucceeded
	}
	w.Events().Push(evt)

	if p.TakeBossDefeated() {
		w.Events().Push(ecs.Event{Kind: ecs.EventBossDefeated, Entity: target, X: evt.X, Y: evt.Y})
	}
}

func (s *PlayerControllerSystem) beginCut(w *ecs.World, p *obj.Player, reach float64) {
	target, kind, ok := nearestTarget(w, p, reach)
	if !ok {
		return
	}
	p.BeginCut(kind)
	_ = ecs.Add(w, target, component.CutTargetComponent, &component.CutTarget{})
	w.Events().Push(ecs.Event{Kind: ecs.EventCutStarted, Entity: target, X: p.Pos.X, Y: p.Pos.Y, Name: kind.String()})
}

// nearestTarget picks the closest standing tree or boss whose box overlaps
// the player's box widened by reach on both sides. Bosses win ties.
func nearestTarget(w *ecs.World, p *obj.Player, reach float64) (ecs.Entity, obj.CutTarget, bool) {
	bb := p.Bounds()
	zone := cp.BB{L: bb.L - reach, B: bb.B, R: bb.R + reach, T: bb.T}
	center := boxCenter(bb)

	var (
		best     ecs.Entity
		bestKind obj.CutTarget
		found    bool
	)
	bestDist := math.Inf(1)

	consider := func(e ecs.Entity, box cp.BB, kind obj.CutTarget) {
		if !zone.Intersects(box) {
			return
		}
		d := center.Distance(boxCenter(box))
		if d < bestDist || (d == bestDist && kind == obj.TargetBoss) {
			best, bestKind, bestDist, found = e, kind, d, true
		}
	}

	ecs.ForEach2(w, component.BossComponent, component.TransformComponent, func(e ecs.Entity, b *component.Boss, t *component.Transform) {
		consider(e, boxAt(t.X, t.Y, b.Width, b.Height), obj.TargetBoss)
	})
	ecs.ForEach2(w, component.TreeComponent, component.TransformComponent, func(e ecs.Entity, tr *component.Tree, t *component.Transform) {
		if tr.Felled {
			return
		}
		consider(e, boxAt(t.X, t.Y, tr.Width, tr.Height), obj.TargetTree)
	})

	return best, bestKind, found
}
