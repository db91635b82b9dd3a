package common

const (
	BaseWidth  = 960
	BaseHeight = 540
)

// Bounce advances value by dir*step and reverses dir when the result reaches
// lo or hi. The returned value is clamped to [lo, hi].
func Bounce(value, dir, step, lo, hi float64) (float64, float64) {
	value += dir * step
	if value >= hi {
		return hi, -dir
	}
	if value <= lo {
		return lo, -dir
	}
	return value, dir
}

// BounceOver advances value by dir*step like Bounce but does not clamp. Once
// value is past lo or hi, dir always points back into the range, so value
// never goes further than one step outside it.
func BounceOver(value, dir, step, lo, hi float64) (float64, float64) {
	outward := func() bool {
		return (value > hi && dir*step > 0) || (value < lo && dir*step < 0)
	}
	if outward() {
		dir = -dir
	}
	value += dir * step
	if outward() {
		dir = -dir
	}
	return value, dir
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
