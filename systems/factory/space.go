package factory

import (
	"math"

	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/sim"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision mirror covering the level bounds, split
// into square cells of cellSize pixels. A partial cell at the right or
// bottom edge is rounded up to a whole one.
func CreateSpace(ecs *ecs.ECS, g *sim.Geometry, cellSize int) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	cols := cellsFor(g.Bounds.W, cellSize)
	rows := cellsFor(g.Bounds.H, cellSize)
	components.Space.Set(entry, resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize))
	return entry
}

func cellsFor(extent float64, cellSize int) int {
	return max(1, int(math.Ceil(extent/float64(cellSize))))
}
