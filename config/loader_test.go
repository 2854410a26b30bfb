package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/platformer/sim"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platformer.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsMatchSimulation(t *testing.T) {
	Reset()
	p := sim.DefaultParams()

	if Physics.Gravity != p.Gravity || Physics.JumpSpeed != p.JumpSpeed || Physics.MoveSpeed != p.MoveSpeed {
		t.Errorf("physics = %+v, sim = %+v", Physics, p)
	}
	if Player.MaxHealth != p.MaxHealth || Coin.Value != p.CoinValue {
		t.Errorf("health/coin = %d/%d, sim = %d/%d", Player.MaxHealth, Coin.Value, p.MaxHealth, p.CoinValue)
	}
	if Player.Width != p.PlayerSize.X || Player.Height != p.PlayerSize.Y {
		t.Errorf("player size = %vx%v, sim = %+v", Player.Width, Player.Height, p.PlayerSize)
	}
	if Animation.Speed != p.AnimationSpeed {
		t.Errorf("animation speed = %v, sim = %v", Animation.Speed, p.AnimationSpeed)
	}
	if Level.TileSize != sim.TileSize {
		t.Errorf("tile size = %v, sim = %v", Level.TileSize, sim.TileSize)
	}
	if C.Width != 1520 || C.Height != 900 || C.TPS != 60 {
		t.Errorf("window = %+v", *C)
	}
}

func TestLoadCustomPathOverridesSections(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := writeConfig(t, `
physics:
  gravity: 0.25
coin:
  value: 5
ui:
  text_color: {r: 1, g: 2, b: 3, a: 255}
`)

	used, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if used != path {
		t.Errorf("used = %q, want %q", used, path)
	}
	if Physics.Gravity != 0.25 {
		t.Errorf("gravity = %v, want 0.25", Physics.Gravity)
	}
	if Physics.MoveSpeed != 5 {
		t.Errorf("move speed = %v, unset keys must keep defaults", Physics.MoveSpeed)
	}
	if Coin.Value != 5 || Coin.SpriteFile != "coin.png" {
		t.Errorf("coin = %+v", Coin)
	}
	if UI.TextColor != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("text color = %+v", UI.TextColor)
	}
	if UI.HUDFontSize != 30 {
		t.Errorf("hud font size = %v", UI.HUDFontSize)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"zero tps", "window:\n  tps: 0\n"},
		{"negative tile", "level:\n  tile_size: -1\n"},
		{"malformed", "physics: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)

			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatal("expected an error")
			}
			if C.Width != 1520 || Level.TileSize != 80 {
				t.Errorf("globals changed on error: %+v %+v", *C, Level)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	Reset()
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)

	used, err := Load("")
	if err != nil || used != "" {
		t.Fatalf("no files: used = %q, err = %v", used, err)
	}

	dir := filepath.Join(home, ".platformer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	userPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(userPath, []byte("debug:\n  overlay: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	used, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if used != userPath || !Debug.Overlay {
		t.Errorf("used = %q overlay = %v", used, Debug.Overlay)
	}
}

func TestInputBindingsCoverActions(t *testing.T) {
	for id := ActionMoveLeft; id < ActionCount; id++ {
		b, ok := Input.Bindings[id]
		if !ok || len(b.Keys) == 0 {
			t.Errorf("action %d has no keyboard binding", id)
		}
	}
}
