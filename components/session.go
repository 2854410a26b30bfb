package components

import (
	"github.com/automoto/platformer/sim"
	"github.com/yohamta/donburi"
)

// SessionData holds the running simulation. Systems replace State wholesale
// each frame; nothing else writes to it.
type SessionData struct {
	Engine *sim.Engine
	State  sim.State
	Level  string
}

var Session = donburi.NewComponentType[SessionData]()
