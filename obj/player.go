package obj

import "github.com/jakecoffman/cp"

// Stats are the fixed per-session tuning values of a Player. All rates are
// per tick.
type Stats struct {
	Width            float64
	Height           float64
	StartX           float64
	MoveSpeed        float64
	Gravity          float64
	JumpForce        float64
	CutRate          float64
	SwingStep        float64
	SwingLimit       float64
	SweetSpotMin     float64
	SweetSpotMax     float64
	RewardMultiplier float64
	StartMoney       int
}

const walkCycleFrames = 30

func DefaultStats() Stats {
	return Stats{
		Width:            32,
		Height:           48,
		StartX:           100,
		MoveSpeed:        5,
		Gravity:          0.5,
		JumpForce:        -12,
		CutRate:          2,
		SwingStep:        10,
		SwingLimit:       45,
		SweetSpotMin:     35,
		SweetSpotMax:     65,
		RewardMultiplier: 1.4,
	}
}

// FrameInput is the host state the player reads on each tick.
type FrameInput struct {
	CanvasWidth  float64
	CanvasHeight float64
	MoveLeft     bool
	MoveRight    bool
	// SkillLevel is only read by renderers.
	SkillLevel float64
}

// Player is the lumberjack: physical state, the cutting minigame and the
// money ledger. It is owned and mutated by a single frame loop.
type Player struct {
	Stats Stats

	Pos         cp.Vector
	VelocityY   float64
	FacingRight bool
	Airborne    bool

	Money    int
	TreesCut int
	upgrades map[string]struct{}

	cut          *Cut
	swingAngle   float64
	swingDir     float64
	walkFrame    int
	bossDefeated bool
	lastCut      CutOutcome
}

// NewPlayer places a player on the ground of a canvas of the given height.
func NewPlayer(stats Stats, canvasHeight float64) *Player {
	return &Player{
		Stats:       stats,
		Pos:         cp.Vector{X: stats.StartX, Y: canvasHeight - stats.Height},
		FacingRight: true,
		Money:       stats.StartMoney,
		upgrades:    map[string]struct{}{},
		swingDir:    1,
	}
}

// GroundY is the resting Y position for a canvas of the given height.
func (p *Player) GroundY(canvasHeight float64) float64 {
	return canvasHeight - p.Stats.Height
}

// Bounds returns the player's box. B and T hold the min and max Y so cp's
// overlap tests work in screen space.
func (p *Player) Bounds() cp.BB {
	return cp.BB{L: p.Pos.X, B: p.Pos.Y, R: p.Pos.X + p.Stats.Width, T: p.Pos.Y + p.Stats.Height}
}

func (p *Player) SwingAngle() float64 { return p.swingAngle }

func (p *Player) WalkFrame() int { return p.walkFrame }
