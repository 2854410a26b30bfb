package sim

// Integrate applies one frame of input to the player and advances its
// position by the resulting velocity. Collision correction is left to Resolve.
//
// The left branch is evaluated before the right branch, so holding both
// directions moves the player right.
func Integrate(p Params, pl Player, in Input) Player {
	pl.Vel.X = 0
	if in.MoveLeft {
		pl.Vel.X = -p.MoveSpeed
		pl.Facing = FacingLeft
	}
	if in.MoveRight {
		pl.Vel.X = p.MoveSpeed
		pl.Facing = FacingRight
	}

	if in.Jump && pl.Grounded {
		pl.Vel.Y = p.JumpSpeed
		pl.Grounded = false
	}

	pl.Pos.X += pl.Vel.X
	pl.Pos.Y += pl.Vel.Y
	return pl
}

// ApplyGravity accelerates an airborne player downward. It runs after the
// resolver so a player that just landed carries no downward velocity into
// the next integration.
func ApplyGravity(p Params, pl Player) Player {
	if !pl.Grounded {
		pl.Vel.Y += p.Gravity
	}
	return pl
}

// clampToBounds keeps the player inside the horizontal extent of the level.
func clampToBounds(pl Player, bounds Box) Player {
	if bounds.W <= 0 {
		return pl
	}
	maxX := bounds.Right() - pl.Size.X
	if pl.Pos.X > maxX {
		pl.Pos.X = maxX
	}
	if pl.Pos.X < bounds.X {
		pl.Pos.X = bounds.X
	}
	return pl
}
