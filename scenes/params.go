package scenes

import (
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/sim"
)

// Params converts the loaded configuration into simulation parameters.
func Params() sim.Params {
	return sim.Params{
		Gravity:        cfg.Physics.Gravity,
		JumpSpeed:      cfg.Physics.JumpSpeed,
		MoveSpeed:      cfg.Physics.MoveSpeed,
		MaxHealth:      cfg.Player.MaxHealth,
		CoinValue:      cfg.Coin.Value,
		AnimationSpeed: cfg.Animation.Speed,
		PlayerSize:     sim.Vec{X: cfg.Player.Width, Y: cfg.Player.Height},
	}
}

// NewEngine extracts the level geometry from rows and builds an engine with
// the configured parameters.
func NewEngine(rows []string) (*sim.Engine, error) {
	g, err := sim.ParseGrid(rows, cfg.Level.TileSize)
	if err != nil {
		return nil, err
	}
	return sim.NewEngine(Params(), g)
}
