package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CoinData links a coin entity to its slot in the simulation's coin list.
type CoinData struct {
	Index  int
	Offset float32 // Current bob offset in pixels
}

var Coin = donburi.NewComponentType[CoinData]()

var Tween = donburi.NewComponentType[gween.Sequence]()
