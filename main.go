// platformer is a single-screen tile platformer.
//
// Usage:
//
//	platformer                      - Play the embedded level
//	platformer --level my.txt       - Play a level file (.txt grid or Tiled .tmx)
//	platformer validate <level>     - Check a level and print a preview
//	platformer simulate             - Run the simulation headless from an input script
//
// Global flags:
//
//	--config <path>   - YAML overrides (default: ~/.platformer/config.yaml, ./configs/platformer.yaml)
//	--level <path>    - Level file (default: embedded levels/level1.txt)
//	--assets <dir>    - Directory holding player.png, platform.png and coin.png
//	--debug           - Start with the collider overlay visible
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/platformer/assets"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevel    string
	flagAssets   string
	flagFont     string
	flagDebug    bool
	flagLogLevel string
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() bool
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("platformer failed", "err", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A tile platformer: run, jump and collect coins",
	Long: `Walk with Left/Right (or A/D), jump with Space, Up or W.
F1 toggles the collider overlay and Esc quits.

Levels are character grids: '#' platform, 'C' coin, 'P' player spawn,
anything else is empty. Tiled .tmx maps are read from the "tiles" layer.

Examples:
  platformer
  platformer --level ./levels/cave.txt --assets ./art
  platformer validate ./levels/cave.txt
  platformer simulate --script "N5 R40 RJ1 R40"`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config with overrides")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level file (.txt or .tmx); empty uses the embedded level")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagAssets, "assets", ".", "Directory with player.png, platform.png and coin.png")
	rootCmd.Flags().StringVar(&flagFont, "font", "", "TrueType font for the HUD; empty uses Go Regular")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the collider overlay on start")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup loads configuration and installs the process logger.
func setup(cmd *cobra.Command, args []string) error {
	used, err := cfg.Load(flagConfig)
	if err != nil {
		return err
	}

	level := cfg.Debug.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           lvl,
	})
	log.SetDefault(logger)

	if used != "" {
		log.Debug("config loaded", "path", used)
	}
	return nil
}

// loadLevel returns the rows and display name of the selected level.
func loadLevel(path string) ([]string, string, error) {
	if path == "" {
		rows, err := leveldata.Load(assets.Levels(), cfg.Level.DefaultLevel)
		return rows, cfg.Level.DefaultLevel, err
	}
	rows, err := leveldata.LoadFile(path)
	return rows, path, err
}

func runGame(cmd *cobra.Command, args []string) error {
	rows, name, err := loadLevel(flagLevel)
	if err != nil {
		return err
	}
	engine, err := scenes.NewEngine(rows)
	if err != nil {
		return fmt.Errorf("level %s: %w", name, err)
	}

	var ttf []byte
	if flagFont != "" {
		if ttf, err = os.ReadFile(flagFont); err != nil {
			return fmt.Errorf("read font: %w", err)
		}
	}
	if err := fonts.LoadDefaults(ttf, cfg.UI.HUDFontSize, cfg.UI.LabelFontSize); err != nil {
		return err
	}

	sprites, missing := assets.NewSpriteLoader(os.DirFS(flagAssets)).LoadSprites()
	for _, m := range missing {
		log.Warn("using placeholder sprite", "file", m, "dir", flagAssets)
	}

	if flagDebug {
		cfg.Debug.Overlay = true
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetTPS(cfg.C.TPS)

	scene := scenes.NewPlatformerScene(engine, sprites, name)
	if err := ebiten.RunGame(&Game{scene: scene}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logState(scene.State())
	return nil
}
