package sim

import (
	"errors"
	"fmt"
)

// Per-frame tuning at 60 ticks per second. Gravity, JumpSpeed and MoveSpeed
// are deltas applied once per step, not rates scaled by elapsed time.
const (
	Gravity        = 0.5
	JumpSpeed      = -10.0
	MoveSpeed      = 5.0
	MaxHealth      = 100
	CoinValue      = 10
	AnimationSpeed = 0.1 // seconds per run-cycle frame
	TileSize       = 80.0
)

var ErrInvalidParams = errors.New("invalid simulation parameters")

type Params struct {
	Gravity        float64
	JumpSpeed      float64
	MoveSpeed      float64
	MaxHealth      int
	CoinValue      int
	AnimationSpeed float64
	PlayerSize     Vec
}

func DefaultParams() Params {
	return Params{
		Gravity:        Gravity,
		JumpSpeed:      JumpSpeed,
		MoveSpeed:      MoveSpeed,
		MaxHealth:      MaxHealth,
		CoinValue:      CoinValue,
		AnimationSpeed: AnimationSpeed,
		PlayerSize:     Vec{X: TileSize, Y: TileSize},
	}
}

func (p Params) validate() error {
	switch {
	case p.JumpSpeed >= 0:
		return fmt.Errorf("jump speed %v must be negative (upward): %w", p.JumpSpeed, ErrInvalidParams)
	case p.Gravity < 0:
		return fmt.Errorf("gravity %v: %w", p.Gravity, ErrInvalidParams)
	case p.MoveSpeed < 0:
		return fmt.Errorf("move speed %v: %w", p.MoveSpeed, ErrInvalidParams)
	case p.PlayerSize.X <= 0 || p.PlayerSize.Y <= 0:
		return fmt.Errorf("player size %vx%v: %w", p.PlayerSize.X, p.PlayerSize.Y, ErrInvalidParams)
	case p.AnimationSpeed <= 0:
		return fmt.Errorf("animation speed %v: %w", p.AnimationSpeed, ErrInvalidParams)
	case p.MaxHealth < 0 || p.CoinValue < 0:
		return fmt.Errorf("max health %d, coin value %d: %w", p.MaxHealth, p.CoinValue, ErrInvalidParams)
	}
	return nil
}
