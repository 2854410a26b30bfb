package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/automoto/platformer/scenes"
	"github.com/automoto/platformer/sim"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [level]",
	Short: "Check a level file and print a preview",
	Long: `Loads a level, extracts its geometry with the configured tile size and
prints a summary followed by a colored preview of the grid.

Without an argument the --level flag (or the embedded level) is checked.

Examples:
  platformer validate ./levels/cave.txt
  platformer validate ./maps/cave.tmx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

// previewStyles maps grid symbols to lipgloss styles.
var previewStyles = map[byte]lipgloss.Style{
	sim.SymbolPlatform: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	sim.SymbolCoin:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	sim.SymbolSpawn:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
}

var emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func runValidate(cmd *cobra.Command, args []string) error {
	path := flagLevel
	if len(args) == 1 {
		path = args[0]
	}

	rows, name, err := loadLevel(path)
	if err != nil {
		return err
	}
	engine, err := scenes.NewEngine(rows)
	if err != nil {
		return fmt.Errorf("level %s: %w", name, err)
	}

	writeSummary(cmd.OutOrStdout(), name, engine.Geometry())
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), renderPreview(rows))
	return nil
}

func writeSummary(w io.Writer, name string, g *sim.Geometry) {
	fmt.Fprintf(w, "Level:     %s\n", name)
	fmt.Fprintf(w, "Grid:      %d x %d tiles (%gpx)\n", g.Cols, g.Rows, g.TileSize)
	fmt.Fprintf(w, "Size:      %g x %g px\n", g.Bounds.W, g.Bounds.H)
	fmt.Fprintf(w, "Platforms: %d\n", len(g.Platforms))
	fmt.Fprintf(w, "Coins:     %d\n", len(g.Coins))
	fmt.Fprintf(w, "Spawn:     %g, %g\n", g.Spawn.X, g.Spawn.Y)
}

// renderPreview styles each row, grouping runs of the same symbol.
func renderPreview(rows []string) string {
	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < len(row) {
			start := x
			for x < len(row) && row[x] == row[start] {
				x++
			}
			style, ok := previewStyles[row[start]]
			if !ok {
				style = emptyStyle
			}
			sb.WriteString(style.Render(row[start:x]))
		}
	}
	return sb.String()
}
