package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveLeft        bool
	MoveRight       bool
	JumpPressed     bool
	InteractPressed bool
}

var InputComponent = NewComponent[Input]()
