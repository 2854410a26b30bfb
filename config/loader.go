package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the package globals for YAML overrides. Sections that
// are missing from the file keep their current values.
type fileConfig struct {
	Window    Config          `yaml:"window"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Animation AnimationConfig `yaml:"animation"`
	Coin      CoinConfig      `yaml:"coin"`
	Level     LevelConfig     `yaml:"level"`
	UI        UIConfig        `yaml:"ui"`
	Debug     DebugConfig     `yaml:"debug"`
}

// Load applies YAML overrides on top of the defaults and returns the path
// that was used, or "" when no file was found.
// Search order: customPath -> ~/.platformer/config.yaml -> ./configs/platformer.yaml -> defaults
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "platformer.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}

	return "", nil
}

// Reset restores the built-in defaults.
func Reset() {
	setDefaults()
}

func apply(data []byte) error {
	f := fileConfig{
		Window:    *C,
		Physics:   Physics,
		Player:    Player,
		Animation: Animation,
		Coin:      Coin,
		Level:     Level,
		UI:        UI,
		Debug:     Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	if err := f.validate(); err != nil {
		return err
	}

	*C = f.Window
	Physics = f.Physics
	Player = f.Player
	Animation = f.Animation
	Coin = f.Coin
	Level = f.Level
	UI = f.UI
	Debug = f.Debug
	return nil
}

func (f *fileConfig) validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", f.Window.Width, f.Window.Height)
	case f.Window.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", f.Window.TPS)
	case f.Level.TileSize <= 0:
		return fmt.Errorf("tile_size %v must be positive", f.Level.TileSize)
	case f.Level.CellSize <= 0:
		return fmt.Errorf("cell_size %d must be positive", f.Level.CellSize)
	case f.Animation.FrameWidth <= 0 || f.Animation.FrameHeight <= 0:
		return fmt.Errorf("animation frame %dx%d must be positive", f.Animation.FrameWidth, f.Animation.FrameHeight)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", filename)
}
