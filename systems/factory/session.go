package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the entity that owns the simulation state, starting
// from the engine's initial state.
func CreateSession(ecs *ecs.ECS, engine *sim.Engine, level string) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Engine: engine,
		State:  engine.NewState(),
		Level:  level,
	})
	return session
}
