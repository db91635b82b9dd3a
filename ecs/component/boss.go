package component

import "image/color"

// Boss is a giant tree that appears after enough regular trees are cut.
type Boss struct {
	Name   string
	Width  float64
	Height float64
	Color  color.Color
	// Frames counts ticks since spawning and drives the idle sway.
	Frames int
}

var BossComponent = NewComponent[Boss]()
