package system

import (
	"log"

	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
	"github.com/milk9111/timberjack/obj"
)

// BossSystem spawns the boss after every Session.BossEvery trees and removes
// it once the player reports it defeated.
type BossSystem struct {
	template component.Boss
	x        float64
}

func NewBossSystem(template component.Boss, x float64) *BossSystem {
	return &BossSystem{template: template, x: x}
}

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess := sessionOf(w)
	if sess == nil || sess.Paused {
		return
	}

	for _, evt := range w.Events().Items() {
		switch {
		case evt.Kind == ecs.EventCutSucceeded && evt.Name == obj.TargetTree.String():
			sess.TreesSinceBoss++
		case evt.Kind == ecs.EventBossDefeated:
			if ecs.Has(w, evt.Entity, component.BossComponent) {
				ecs.DestroyEntity(w, evt.Entity)
			}
			sess.BossesDefeated++
			log.Printf("boss: %s defeated (%d total)", s.template.Name, sess.BossesDefeated)
		}
	}

	ecs.ForEach(w, component.BossComponent, func(_ ecs.Entity, b *component.Boss) {
		b.Frames++
	})

	if sess.BossEvery <= 0 || sess.TreesSinceBoss < sess.BossEvery {
		return
	}
	if ecs.Count(w, component.BossComponent) > 0 {
		return
	}
	s.spawn(w, sess)
}

func (s *BossSystem) spawn(w *ecs.World, sess *component.Session) {
	boss := s.template
	e := ecs.CreateEntity(w)
	y := sess.Height - boss.Height
	if err := ecs.Add(w, e, component.BossComponent, &boss); err != nil {
		log.Printf("boss: add component: %v", err)
		return
	}
	_ = ecs.Add(w, e, component.TransformComponent, &component.Transform{X: s.x, Y: y})
	sess.TreesSinceBoss = 0
	w.Events().Push(ecs.Event{Kind: ecs.EventBossSpawned, Entity: e, X: s.x, Y: y, Name: boss.Name})
	log.Printf("boss: %s appeared", boss.Name)
}
