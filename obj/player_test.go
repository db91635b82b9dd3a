package obj

import "testing"

const (
	testCanvasW = 800.0
	testCanvasH = 400.0
)

func newTestPlayer() *Player {
	return NewPlayer(DefaultStats(), testCanvasH)
}

func idle() FrameInput {
	return FrameInput{CanvasWidth: testCanvasW, CanvasHeight: testCanvasH}
}

func TestNewPlayerStartsOnGround(t *testing.T) {
	p := newTestPlayer()
	if p.Pos.X != 100 {
		t.Fatalf("start x = %v, want 100", p.Pos.X)
	}
	if p.Pos.Y != p.GroundY(testCanvasH) {
		t.Fatalf("start y = %v, want ground %v", p.Pos.Y, p.GroundY(testCanvasH))
	}
	if !p.FacingRight || p.Airborne || p.IsCutting() {
		t.Fatalf("unexpected initial flags: %+v", p.Snapshot())
	}
}

func TestUpdateKeepsPlayerOnGround(t *testing.T) {
	p := newTestPlayer()
	ground := p.GroundY(testCanvasH)
	for i := 0; i < 10; i++ {
		p.Update(idle())
		if p.Pos.Y != ground {
			t.Fatalf("tick %d: y = %v, want %v", i, p.Pos.Y, ground)
		}
		if p.VelocityY != 0 {
			t.Fatalf("tick %d: velocity = %v, want 0", i, p.VelocityY)
		}
	}
}

func TestJumpArcLandsAndClearsAirborne(t *testing.T) {
	p := newTestPlayer()
	ground := p.GroundY(testCanvasH)

	p.Jump()
	if !p.Airborne || p.VelocityY != -12 {
		t.Fatalf("after jump: airborne=%v velocity=%v", p.Airborne, p.VelocityY)
	}

	landed := false
	for i := 0; i < 200; i++ {
		p.Update(idle())
		if p.Pos.Y > ground {
			t.Fatalf("tick %d: y %v below ground %v", i, p.Pos.Y, ground)
		}
		if !p.Airborne {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatalf("player never landed")
	}
	if p.Pos.Y != ground || p.VelocityY != 0 {
		t.Fatalf("after landing: y=%v velocity=%v", p.Pos.Y, p.VelocityY)
	}
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	p.Update(idle())
	before := p.VelocityY

	p.Jump()
	if p.VelocityY != before {
		t.Fatalf("second jump changed velocity: %v -> %v", before, p.VelocityY)
	}

	q := newTestPlayer()
	q.Jump()
	q.Jump()
	if q.VelocityY != q.Stats.JumpForce {
		t.Fatalf("back-to-back jump velocity = %v, want %v", q.VelocityY, q.Stats.JumpForce)
	}
}

func TestHorizontalMovement(t *testing.T) {
	maxX := testCanvasW - DefaultStats().Width

	cases := []struct {
		name       string
		startX     float64
		left       bool
		right      bool
		wantX      float64
		wantFacing bool
	}{
		{"right", 100, false, true, 105, true},
		{"left", 100, true, false, 95, false},
		{"both_cancel", 100, true, true, 100, true},
		{"left_clamped_at_zero", 2, true, false, 0, false},
		{"left_blocked_at_zero", 0, true, false, 0, true},
		{"right_clamped_at_edge", maxX - 2, false, true, maxX, true},
		{"right_blocked_at_edge", maxX, false, true, maxX, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Pos.X = c.startX
			in := idle()
			in.MoveLeft = c.left
			in.MoveRight = c.right
			p.Update(in)
			if p.Pos.X != c.wantX {
				t.Fatalf("x = %v, want %v", p.Pos.X, c.wantX)
			}
			if p.FacingRight != c.wantFacing {
				t.Fatalf("facingRight = %v, want %v", p.FacingRight, c.wantFacing)
			}
		})
	}
}

func TestWalkFrameWraps(t *testing.T) {
	p := newTestPlayer()
	in := idle()
	in.MoveRight = true
	for i := 0; i < walkCycleFrames; i++ {
		p.Update(in)
	}
	if p.WalkFrame() != 0 {
		t.Fatalf("walk frame = %d, want 0 after a full cycle", p.WalkFrame())
	}
}

func TestBoundsFollowPosition(t *testing.T) {
	p := newTestPlayer()
	bb := p.Bounds()
	if bb.L != p.Pos.X || bb.R != p.Pos.X+32 || bb.B != p.Pos.Y || bb.T != p.Pos.Y+48 {
		t.Fatalf("unexpected bounds %+v for pos %+v", bb, p.Pos)
	}
}
