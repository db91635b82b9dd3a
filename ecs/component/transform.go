package component

// Transform is the top-left corner of an entity's box in screen space.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
