package obj

import (
	"math"

	"github.com/milk9111/timberjack/common"
)

// CutTarget is what the player is swinging at.
type CutTarget int

const (
	TargetTree CutTarget = iota
	TargetBoss
)

func (t CutTarget) String() string {
	switch t {
	case TargetTree:
		return "tree"
	case TargetBoss:
		return "boss"
	default:
		return "unknown"
	}
}

const (
	progressMin = 0.0
	progressMax = 100.0
)

// Cut is the active cutting minigame. Progress sweeps between 0 and 100.
type Cut struct {
	Target    CutTarget
	Progress  float64
	Direction float64
}

// CutOutcome describes the most recent AttemptCut resolution.
type CutOutcome struct {
	Target  CutTarget
	Success bool
	Reward  int
}

// BeginCut starts (or restarts) the minigame against target.
func (p *Player) BeginCut(target CutTarget) {
	p.cut = &Cut{Target: target, Progress: progressMin, Direction: 1}
}

// Cutting returns a copy of the active cut, if any.
func (p *Player) Cutting() (Cut, bool) {
	if p.cut == nil {
		return Cut{}, false
	}
	return *p.cut, true
}

func (p *Player) IsCutting() bool { return p.cut != nil }

// InSweetSpot reports whether progress is inside the success window.
func (p *Player) InSweetSpot(progress float64) bool {
	return progress >= p.Stats.SweetSpotMin && progress <= p.Stats.SweetSpotMax
}

// AttemptCut resolves the active cut. It returns true when progress was in
// the sweet spot. Trees pay out round(TreesCut*multiplier) using the
// post-increment count; bosses raise the boss-defeated flag.
func (p *Player) AttemptCut() bool {
	if p.cut == nil {
		return false
	}

	cut := *p.cut
	p.cut = nil
	p.resetSwing()

	if !p.InSweetSpot(cut.Progress) {
		p.lastCut = CutOutcome{Target: cut.Target}
		return false
	}

	outcome := CutOutcome{Target: cut.Target, Success: true}
	switch cut.Target {
	case TargetTree:
		p.TreesCut++
		outcome.Reward = int(math.Round(float64(p.TreesCut) * p.Stats.RewardMultiplier))
		p.AddMoney(outcome.Reward)
	case TargetBoss:
		p.bossDefeated = true
	}
	p.lastCut = outcome
	return true
}

// LastCut returns the outcome of the most recent AttemptCut on an active cut.
func (p *Player) LastCut() CutOutcome { return p.lastCut }

// TakeBossDefeated reports and clears the boss-defeated flag.
func (p *Player) TakeBossDefeated() bool {
	defeated := p.bossDefeated
	p.bossDefeated = false
	return defeated
}

func (p *Player) updateCut() {
	if p.cut == nil {
		p.resetSwing()
		return
	}

	p.cut.Progress, p.cut.Direction = common.Bounce(p.cut.Progress, p.cut.Direction, p.Stats.CutRate, progressMin, progressMax)

	step := p.Stats.SwingStep
	if !p.FacingRight {
		step = -step
	}
	p.swingAngle, p.swingDir = common.BounceOver(p.swingAngle, p.swingDir, step, -p.Stats.SwingLimit, p.Stats.SwingLimit)
}

func (p *Player) resetSwing() {
	p.swingAngle = 0
	p.swingDir = 1
}
