package scenes

import (
	"sync"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/sim"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs     *ecs.ECS
	engine  *sim.Engine
	sprites *assets.Sprites
	level   string
	once    sync.Once
}

// NewPlatformerScene creates the game scene for a prepared engine. The ECS
// world is built lazily on the first Update.
func NewPlatformerScene(engine *sim.Engine, sprites *assets.Sprites, level string) *PlatformerScene {
	return &PlatformerScene{engine: engine, sprites: sprites, level: level}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.UI.Background)
		return
	}
	ps.ecs.Draw(screen)
}

// Done reports whether the player asked to quit.
func (ps *PlatformerScene) Done() bool {
	if ps.ecs == nil {
		return false
	}
	return systems.GetOrCreateSettings(ps.ecs).Quit
}

// State returns the current simulation state, or the initial state before
// the world is built.
func (ps *PlatformerScene) State() sim.State {
	if ps.ecs != nil {
		if entry, ok := components.Session.First(ps.ecs.World); ok {
			return components.Session.Get(entry).State
		}
	}
	return ps.engine.NewState()
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateSimulation)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCoins)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawCoins)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ps.ecs = ecs
	ps.populate()
}

// populate spawns the session, the collision space and one entity per
// platform, coin and the player.
func (ps *PlatformerScene) populate() {
	g := ps.engine.Geometry()
	session := components.Session.Get(factory.CreateSession(ps.ecs, ps.engine, ps.level))

	space := components.Space.Get(factory.CreateSpace(ps.ecs, g, cfg.Level.CellSize))

	for _, box := range g.Platforms {
		factory.CreatePlatform(ps.ecs, space, box, ps.sprites.Platform)
	}
	for i, box := range g.Coins {
		factory.CreateCoin(ps.ecs, space, i, box, ps.sprites.Coin)
		log.Debug("coin placed", "index", i, "x", box.X, "y", box.Y)
	}
	factory.CreatePlayer(ps.ecs, space, session.State.Player, ps.sprites.Player)

	log.Info("level loaded",
		"level", ps.level,
		"platforms", len(g.Platforms),
		"coins", len(g.Coins),
		"spawn", g.Spawn,
	)
}
