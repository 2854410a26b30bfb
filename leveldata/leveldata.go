// Package leveldata reads level grids from text files or Tiled maps.
//
// A grid is a slice of equal-length rows where '#' is a platform tile,
// 'C' a coin and 'P' the player spawn. Validation of the grid itself is
// left to sim.ParseGrid.
package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TileLayer is the name of the Tiled layer read as the level grid.
const TileLayer = "tiles"

// SymbolProperty is the per-tile string property naming the grid symbol.
// Tiles without it are solid.
const SymbolProperty = "symbol"

var (
	ErrUnsupportedFormat = errors.New("unsupported level format")
	ErrNoTileLayer       = errors.New("map has no tile layer")
)

// Load reads the level at name from fsys. The format is chosen by extension:
// .txt (or none) for a character grid, .tmx for a Tiled map.
func Load(fsys fs.FS, name string) ([]string, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".txt", "":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("open level %s: %w", name, err)
		}
		return ParseText(string(data)), nil
	case ".tmx":
		return loadTiled(fsys, name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// LoadFile loads a level from the local filesystem.
func LoadFile(p string) ([]string, error) {
	dir, base := filepath.Split(p)
	if dir == "" {
		dir = "."
	}
	return Load(os.DirFS(dir), base)
}

// ParseText splits a grid file into rows. Line endings may be LF or CRLF and
// a single trailing newline does not produce an extra row. Content that is
// blank after trimming whitespace has no rows.
func ParseText(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func loadTiled(fsys fs.FS, name string) ([]string, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", name, err)
	}

	layer := findLayer(m)
	if layer == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoTileLayer, name)
	}

	rows := make([]string, m.Height)
	for y := 0; y < m.Height; y++ {
		var b strings.Builder
		for x := 0; x < m.Width; x++ {
			b.WriteByte(tileSymbol(layer.Tiles[y*m.Width+x]))
		}
		rows[y] = b.String()
	}
	return rows, nil
}

// findLayer prefers the layer named TileLayer and falls back to the first one.
func findLayer(m *tiled.Map) *tiled.Layer {
	for _, l := range m.Layers {
		if l.Name == TileLayer {
			return l
		}
	}
	if len(m.Layers) > 0 {
		return m.Layers[0]
	}
	return nil
}

func tileSymbol(tile *tiled.LayerTile) byte {
	if tile == nil || tile.IsNil() {
		return '.'
	}
	if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && tilesetTile.Properties != nil {
		if s := tilesetTile.Properties.GetString(SymbolProperty); s != "" {
			return s[0]
		}
	}
	return '#'
}
