package components

import (
	"github.com/automoto/platformer/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData points at the sheet a sprite entity draws from. The frame
// index itself comes from the simulation state.
type AnimationData struct {
	Sheet *animations.Sheet
}

var Animation = donburi.NewComponentType[AnimationData]()
