// Package sim is the fixed-timestep simulation core: level geometry, player
// kinematics, collision resolution, coin pickup and the run animation.
// It has no dependencies on ebitengine, donburi, or resolv.
package sim

// Vec is a 2D vector in level-pixel coordinates.
type Vec struct {
	X, Y float64
}

// Box is an axis-aligned bounding box. X and Y are the top-left corner.
type Box struct {
	X, Y, W, H float64
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Overlaps reports whether the two boxes share a region of positive area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}
