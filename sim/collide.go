package sim

// Resolve pushes the player out of every platform it overlaps and recomputes
// the grounded flag.
//
// Platforms are visited in order and each correction feeds the next check,
// so overlaps at tile seams resolve in geometry order rather than against
// the pre-frame position. Every overlap is resolved on the axis with the
// smaller penetration; ties go to the vertical axis, and within an axis ties
// push the player left or up.
func Resolve(pl Player, platforms []Box) Player {
	pl.Grounded = false

	for _, platform := range platforms {
		box := pl.Box()
		if !box.Overlaps(platform) {
			continue
		}

		overlapLeft := box.Right() - platform.X
		overlapRight := platform.Right() - box.X
		overlapTop := box.Bottom() - platform.Y
		overlapBottom := platform.Bottom() - box.Y

		minX := min(overlapLeft, overlapRight)
		minY := min(overlapTop, overlapBottom)

		if minX < minY {
			if overlapLeft <= overlapRight {
				pl.Pos.X = platform.X - pl.Size.X
			} else {
				pl.Pos.X = platform.Right()
			}
			pl.Vel.X = 0
			continue
		}

		if overlapTop <= overlapBottom {
			pl.Pos.Y = platform.Y - pl.Size.Y
			pl.Vel.Y = 0
			pl.Grounded = true
		} else {
			pl.Pos.Y = platform.Bottom()
			pl.Vel.Y = 0
		}
	}

	return pl
}
