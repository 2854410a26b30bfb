package replay

import (
	"errors"
	"testing"

	"github.com/automoto/platformer/sim"
)

func TestParse(t *testing.T) {
	s, err := Parse("R3 rj1  N2\tL")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Step{
		{Input: sim.Input{MoveRight: true}, Frames: 3},
		{Input: sim.Input{MoveRight: true, Jump: true}, Frames: 1},
		{Input: sim.Input{}, Frames: 2},
		{Input: sim.Input{MoveLeft: true}, Frames: 1},
	}
	got := s.Steps()
	if len(got) != len(want) {
		t.Fatalf("got %d steps, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if s.Frames() != 7 {
		t.Errorf("frames = %d, want 7", s.Frames())
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"30", "R0", "R-1", "X5", "Rx"} {
		if _, err := Parse(text); !errors.Is(err, ErrBadScript) {
			t.Errorf("Parse(%q): err = %v, want ErrBadScript", text, err)
		}
	}
}

func TestScriptSample(t *testing.T) {
	s, err := Parse("R2 J1")
	if err != nil {
		t.Fatal(err)
	}

	want := []sim.Input{
		{MoveRight: true},
		{MoveRight: true},
		{Jump: true},
	}
	for i, w := range want {
		if s.Done() {
			t.Fatalf("frame %d: done too early", i)
		}
		if got := s.Sample(); got != w {
			t.Errorf("frame %d: input = %+v, want %+v", i, got, w)
		}
	}
	if !s.Done() {
		t.Error("expected script to be done")
	}
	if got := s.Sample(); got != (sim.Input{}) {
		t.Errorf("after end: input = %+v, want empty", got)
	}

	s.Reset()
	if s.Done() || s.Sample() != want[0] {
		t.Error("reset did not rewind the script")
	}
}

func TestScriptDrivesEngine(t *testing.T) {
	g, err := sim.ParseGrid([]string{
		"#......#",
		"#P...C.#",
		"########",
	}, sim.TileSize)
	if err != nil {
		t.Fatal(err)
	}
	e, err := sim.NewEngine(sim.DefaultParams(), g)
	if err != nil {
		t.Fatal(err)
	}

	s, err := Parse("N4 R80")
	if err != nil {
		t.Fatal(err)
	}
	final := e.Run(e.NewState(), s, s.Frames(), 1.0/60)

	if final.Player.Score != sim.CoinValue {
		t.Errorf("score = %d, want %d", final.Player.Score, sim.CoinValue)
	}
	if final.ActiveCoins() != 0 {
		t.Errorf("active coins = %d, want 0", final.ActiveCoins())
	}
}
