package component

// CutTarget marks the entity the player is currently swinging at.
type CutTarget struct{}

var CutTargetComponent = NewComponent[CutTarget]()
