package component

import "github.com/milk9111/timberjack/upgrades"

// Session is the singleton host state: canvas size, upgrade-driven tuning and
// boss progression.
type Session struct {
	Width  float64
	Height float64

	upgrades.Tuning

	BossEvery      int
	TreesSinceBoss int
	BossesDefeated int
	Paused         bool
}

var SessionComponent = NewComponent[Session]()
