package sim

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// AnimFrame is the index of the run-cycle frame to draw.
type AnimFrame int

const (
	Frame0 AnimFrame = iota
	Frame1
	Frame2
	FrameCount
)

// Next returns the following frame in the cycle.
func (f AnimFrame) Next() AnimFrame {
	return (f + 1) % FrameCount
}

type Player struct {
	Pos      Vec
	Size     Vec
	Vel      Vec
	Facing   Facing
	Grounded bool
	Health   int
	Score    int
}

// Box returns the player's collision box at its current position.
func (p Player) Box() Box {
	return Box{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.X, H: p.Size.Y}
}

// Coin is never removed from the level; collecting it clears Active so that
// coin indices stay stable for renderers.
type Coin struct {
	Box
	Active bool
}

type Animation struct {
	Frame AnimFrame
	Timer float64
}

// State is everything that changes from one frame to the next.
// It is passed to Engine.Step by value and a new State is returned.
type State struct {
	Frame  uint64
	Player Player
	Coins  []Coin
	Anim   Animation
}

// ActiveCoins counts coins that have not been collected.
func (s State) ActiveCoins() int {
	n := 0
	for _, c := range s.Coins {
		if c.Active {
			n++
		}
	}
	return n
}
