package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
)

func sessionOf(w *ecs.World) *component.Session {
	e, ok := ecs.First(w, component.SessionComponent)
	if !ok {
		return nil
	}
	s, _ := ecs.Get(w, e, component.SessionComponent)
	return s
}

// boxAt builds a screen-space box with B/T holding min/max Y.
func boxAt(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

func boxCenter(bb cp.BB) cp.Vector {
	return cp.Vector{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}
}
