package component

import "image/color"

// Tree is a choppable tree. Felled trees count RegrowTimer down to zero and
// stand back up.
type Tree struct {
	Width       float64
	Height      float64
	Leaves      color.Color
	Felled      bool
	RegrowTimer int
}

var TreeComponent = NewComponent[Tree]()
