package system

import (
	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
)

// TreeSystem fells trees on successful cuts and regrows them once their
// timer runs out.
type TreeSystem struct{}

func NewTreeSystem() *TreeSystem {
	return &TreeSystem{}
}

func (s *TreeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sess := sessionOf(w)
	if sess == nil || sess.Paused {
		return
	}

	for _, evt := range w.Events().Items() {
		if evt.Kind != ecs.EventCutSucceeded {
			continue
		}
		tree, ok := ecs.Get(w, evt.Entity, component.TreeComponent)
		if !ok || tree.Felled {
			continue
		}
		tree.Felled = true
		tree.RegrowTimer = sess.RegrowFrames
	}

	ecs.ForEach(w, component.TreeComponent, func(_ ecs.Entity, tree *component.Tree) {
		if !tree.Felled {
			return
		}
		if tree.RegrowTimer > 0 {
			tree.RegrowTimer--
		}
		if tree.RegrowTimer == 0 {
			tree.Felled = false
		}
	})
}
