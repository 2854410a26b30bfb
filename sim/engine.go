package sim

import "fmt"

// Engine holds the read-only inputs of the simulation. It carries no
// per-frame state, so one Engine can step any number of independent States.
type Engine struct {
	params   Params
	geometry *Geometry
}

func NewEngine(p Params, g *Geometry) (*Engine, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("nil geometry: %w", ErrInvalidParams)
	}
	return &Engine{params: p, geometry: g}, nil
}

func (e *Engine) Params() Params       { return e.params }
func (e *Engine) Geometry() *Geometry { return e.geometry }

// NewState places the player at the level spawn with full health and every
// coin active.
func (e *Engine) NewState() State {
	coins := make([]Coin, len(e.geometry.Coins))
	for i, b := range e.geometry.Coins {
		coins[i] = Coin{Box: b, Active: true}
	}

	return State{
		Player: Player{
			Pos:    e.geometry.Spawn,
			Size:   e.params.PlayerSize,
			Facing: FacingRight,
			Health: e.params.MaxHealth,
		},
		Coins: coins,
		Anim:  Animation{Frame: Frame0},
	}
}

// Step advances s by one frame. dt is the host's fixed frame time in seconds
// and only drives the animation timer.
func (e *Engine) Step(s State, in Input, dt float64) State {
	pl := Integrate(e.params, s.Player, in)
	pl = clampToBounds(pl, e.geometry.Bounds)
	pl = Resolve(pl, e.geometry.Platforms)
	pl = ApplyGravity(e.params, pl)
	pl, s.Coins = CollectCoins(e.params, pl, s.Coins)

	s.Player = pl
	s.Anim = Animate(e.params, s.Anim, pl.Vel.X, dt)
	s.Frame++
	return s
}

// Run steps s once per sample drawn from src.
func (e *Engine) Run(s State, src InputSource, frames int, dt float64) State {
	for i := 0; i < frames; i++ {
		s = e.Step(s, src.Sample(), dt)
	}
	return s
}
