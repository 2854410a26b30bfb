package scenes

import (
	"errors"
	"testing"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestParamsFromDefaults(t *testing.T) {
	cfg.Reset()
	if got, want := Params(), sim.DefaultParams(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}
}

func TestNewEngine(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e, err := NewEngine([]string{"P.C", "###"})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if len(e.Geometry().Coins) != 1 || e.Geometry().TileSize != cfg.Level.TileSize {
		t.Errorf("geometry = %+v", e.Geometry())
	}

	if _, err := NewEngine([]string{"...", "###"}); !errors.Is(err, sim.ErrNoSpawn) {
		t.Errorf("no spawn: err = %v", err)
	}

	cfg.Physics.JumpSpeed = 4
	if _, err := NewEngine([]string{"P"}); !errors.Is(err, sim.ErrInvalidParams) {
		t.Errorf("bad jump speed: err = %v", err)
	}
}

func TestSceneStateBeforeWorldIsBuilt(t *testing.T) {
	cfg.Reset()
	engine, err := NewEngine([]string{
		"#####",
		"#P.C#",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}

	ps := NewPlatformerScene(engine, nil, "test")
	assertInitialState(t, engine, ps.State())

	// A world without a session entity falls back to the initial state.
	ps.ecs = ecs.NewECS(donburi.NewWorld())
	assertInitialState(t, engine, ps.State())
	if ps.Done() {
		t.Error("scene without settings reports done")
	}
}

func assertInitialState(t *testing.T, engine *sim.Engine, got sim.State) {
	t.Helper()
	want := engine.NewState()
	if got.Frame != 0 || got.Player != want.Player || got.ActiveCoins() != want.ActiveCoins() {
		t.Errorf("state = %+v, want initial %+v", got, want)
	}
}
