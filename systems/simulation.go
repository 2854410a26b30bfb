package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/sim"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation advances the session by one fixed frame using the
// current input.
func UpdateSimulation(ecs *ecs.ECS) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	input := getOrCreateInput(ecs)

	StepSession(session, SimInput(input), 1.0/float64(cfg.C.TPS))
}

// StepSession runs one simulation step and logs any coins picked up on it.
func StepSession(session *components.SessionData, in sim.Input, dt float64) {
	prev := session.State
	session.State = session.Engine.Step(prev, in, dt)

	if session.State.Player.Score == prev.Player.Score {
		return
	}
	for i := range session.State.Coins {
		if prev.Coins[i].Active && !session.State.Coins[i].Active {
			log.Info("coin collected",
				"coin", i,
				"score", session.State.Player.Score,
				"remaining", session.State.ActiveCoins(),
				"frame", session.State.Frame,
			)
		}
	}
}
