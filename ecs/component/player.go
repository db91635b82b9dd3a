package component

import "github.com/milk9111/timberjack/obj"

// Player binds an entity to the lumberjack core.
type Player struct {
	Actor *obj.Player
}

var PlayerComponent = NewComponent[Player]()
