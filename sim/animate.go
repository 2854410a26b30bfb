package sim

// timerEpsilon absorbs rounding when dt sums to AnimationSpeed, so six
// steps of 1/60 s reach 0.1 s.
const timerEpsilon = 1e-9

// Animate advances the run cycle by dt seconds of horizontal movement.
// A standing player always shows Frame0 and its timer is left untouched.
func Animate(p Params, a Animation, vx, dt float64) Animation {
	if vx == 0 {
		a.Frame = Frame0
		return a
	}

	a.Timer += dt
	if a.Timer+timerEpsilon >= p.AnimationSpeed {
		a.Timer = 0
		a.Frame = a.Frame.Next()
	}
	return a
}
