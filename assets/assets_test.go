package assets

import (
	"image"
	"io/fs"
	"testing"

	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/sim"
)

func TestEmbeddedLevelsAreValid(t *testing.T) {
	names, err := fs.Glob(Levels(), "levels/*")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Fatal("no embedded levels")
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			rows, err := leveldata.Load(Levels(), name)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			g, err := sim.ParseGrid(rows, sim.TileSize)
			if err != nil {
				t.Fatalf("ParseGrid: %v", err)
			}
			if len(g.Coins) == 0 || len(g.Platforms) == 0 {
				t.Errorf("level has %d platforms and %d coins", len(g.Platforms), len(g.Coins))
			}
			if g.Bounds.W != 1520 {
				t.Errorf("level width = %v, want the window width", g.Bounds.W)
			}
		})
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		b    image.Rectangle
		size float64
		want float64
	}{
		{image.Rect(0, 0, 40, 40), 80, 2},
		{image.Rect(0, 0, 160, 80), 80, 0.5},
		{image.Rect(0, 0, 20, 40), 80, 2},
		{image.Rectangle{}, 80, 1},
	}
	for _, tt := range tests {
		if got := FitScale(tt.b, tt.size); got != tt.want {
			t.Errorf("FitScale(%v, %v) = %v, want %v", tt.b, tt.size, got, tt.want)
		}
	}
}
