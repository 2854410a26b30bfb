package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// PhysicsConfig contains the per-frame movement constants
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to vy every airborne frame
	JumpSpeed float64 `yaml:"jump_speed"` // Negative, up is -y
	MoveSpeed float64 `yaml:"move_speed"`
}

// PlayerConfig contains player dimensions and starting values
type PlayerConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MaxHealth  int     `yaml:"max_health"`
	SpriteFile string  `yaml:"sprite_file"`
}

// AnimationConfig contains walk cycle timing
type AnimationConfig struct {
	Speed float64 `yaml:"speed"` // Seconds per frame
	// Frame size of the generated placeholder strip. Loaded sheets are
	// sliced by their own width.
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
}

// CoinConfig contains pickup value and the idle bob tween
type CoinConfig struct {
	Value       int     `yaml:"value"`
	BobHeight   float32 `yaml:"bob_height"`
	BobDuration float32 `yaml:"bob_duration"` // Seconds per half cycle
	SpriteFile  string  `yaml:"sprite_file"`
}

// LevelConfig contains the grid layout defaults
type LevelConfig struct {
	TileSize       float64 `yaml:"tile_size"`
	DefaultLevel   string  `yaml:"default_level"` // Path inside the embedded level FS
	PlatformSprite string  `yaml:"platform_sprite"`
	// Resolv space cell size
	CellSize int `yaml:"cell_size"`
}

// UIConfig contains HUD layout, fonts and colors
type UIConfig struct {
	HUDFontSize   float64 `yaml:"hud_font_size"`
	LabelFontSize float64 `yaml:"label_font_size"`
	ScoreX        int     `yaml:"score_x"`
	ScoreY        int     `yaml:"score_y"`
	HealthX       int     `yaml:"health_x"`
	HealthY       int     `yaml:"health_y"`
	LabelOffset   int     `yaml:"label_offset"` // Pixels above the player box

	Background color.RGBA `yaml:"background"`
	TextColor  color.RGBA `yaml:"text_color"`

	// Debug colors
	DebugSolidColor   color.RGBA `yaml:"debug_solid_color"`
	DebugPlayerColor  color.RGBA `yaml:"debug_player_color"`
	DebugCoinColor    color.RGBA `yaml:"debug_coin_color"`
	DebugContactColor color.RGBA `yaml:"debug_contact_color"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool   `yaml:"overlay"` // Start with the collider overlay visible
	LogLevel string `yaml:"log_level"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Animation AnimationConfig
var Coin CoinConfig
var Level LevelConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Gold      = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	SkyBlue   = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	DarkGreen = color.RGBA{R: 34, G: 102, B: 51, A: 255}
)

func init() {
	setDefaults()
}

// setDefaults assigns the built-in values to every section.
func setDefaults() {
	C = &Config{
		Width:  1520,
		Height: 900,
		TPS:    60,
		Title:  "Platformer",
	}

	Physics = PhysicsConfig{
		Gravity:   0.5,
		JumpSpeed: -10.0,
		MoveSpeed: 5.0,
	}

	Player = PlayerConfig{
		Width:      80,
		Height:     80,
		MaxHealth:  100,
		SpriteFile: "player.png",
	}

	Animation = AnimationConfig{
		Speed:       0.1,
		FrameWidth:  80,
		FrameHeight: 80,
	}

	Coin = CoinConfig{
		Value:       10,
		BobHeight:   6,
		BobDuration: 0.6,
		SpriteFile:  "coin.png",
	}

	Level = LevelConfig{
		TileSize:       80,
		DefaultLevel:   "levels/level1.txt",
		PlatformSprite: "platform.png",
		CellSize:       40,
	}

	UI = UIConfig{
		HUDFontSize:   30,
		LabelFontSize: 20,
		ScoreX:        20,
		ScoreY:        20,
		HealthX:       20,
		HealthY:       60,
		LabelOffset:   6,

		Background: SkyBlue,
		TextColor:  White,

		DebugSolidColor:   Grey,
		DebugPlayerColor:  Blue,
		DebugCoinColor:    Gold,
		DebugContactColor: Red,
	}

	Debug = DebugConfig{
		Overlay:  false,
		LogLevel: "info",
	}
}
