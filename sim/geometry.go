package sim

import (
	"errors"
	"fmt"
)

// Level grid symbols.
const (
	SymbolPlatform = '#'
	SymbolCoin     = 'C'
	SymbolSpawn    = 'P'
)

var (
	ErrEmptyLevel  = errors.New("level is empty")
	ErrRaggedLevel = errors.New("level rows have different lengths")
	ErrNoSpawn     = errors.New("level has no player spawn")
)

// Geometry is the static part of a level. It is built once and never
// modified afterwards, so a single value can be shared by every State.
type Geometry struct {
	Platforms []Box
	Coins     []Box
	Spawn     Vec
	Bounds    Box
	TileSize  float64
	Cols      int
	Rows      int
}

// ParseGrid extracts geometry from a rectangular character grid. Platforms
// and coins are listed in row-major order; that order is also the order in
// which the resolver visits platforms.
func ParseGrid(rows []string, tileSize float64) (*Geometry, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size %v: %w", tileSize, ErrInvalidParams)
	}

	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrRaggedLevel)
		}
	}

	g := &Geometry{
		TileSize: tileSize,
		Cols:     cols,
		Rows:     len(rows),
		Bounds:   Box{W: float64(cols) * tileSize, H: float64(len(rows)) * tileSize},
	}

	spawnFound := false
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			cell := Box{X: float64(x) * tileSize, Y: float64(y) * tileSize, W: tileSize, H: tileSize}
			switch row[x] {
			case SymbolPlatform:
				g.Platforms = append(g.Platforms, cell)
			case SymbolCoin:
				g.Coins = append(g.Coins, cell)
			case SymbolSpawn:
				if !spawnFound {
					g.Spawn = Vec{X: cell.X, Y: cell.Y}
					spawnFound = true
				}
			}
		}
	}

	if !spawnFound {
		return nil, ErrNoSpawn
	}
	return g, nil
}
