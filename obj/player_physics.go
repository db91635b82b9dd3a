package obj

import "github.com/milk9111/timberjack/common"

// Update advances one tick: gravity, ground contact, horizontal movement and
// the cutting animation.
func (p *Player) Update(in FrameInput) {
	p.VelocityY += p.Stats.Gravity
	p.Pos.Y += p.VelocityY

	ground := p.GroundY(in.CanvasHeight)
	if p.Pos.Y >= ground {
		p.Pos.Y = ground
		p.VelocityY = 0
		p.Airborne = false
	}

	maxX := in.CanvasWidth - p.Stats.Width
	if in.MoveLeft && p.Pos.X > 0 {
		p.Pos.X -= p.Stats.MoveSpeed
		p.FacingRight = false
		p.walkFrame = (p.walkFrame + 1) % walkCycleFrames
	}
	if in.MoveRight && p.Pos.X < maxX {
		p.Pos.X += p.Stats.MoveSpeed
		p.FacingRight = true
		p.walkFrame = (p.walkFrame + 1) % walkCycleFrames
	}
	p.Pos.X = common.Clamp(p.Pos.X, 0, max(maxX, 0))

	p.updateCut()
}

// Jump applies the jump impulse unless the player is already airborne.
func (p *Player) Jump() {
	if p.Airborne {
		return
	}
	p.VelocityY = p.Stats.JumpForce
	p.Airborne = true
}
