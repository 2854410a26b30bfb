package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/sim"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// Draw all collision objects in the space
	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.UI.DebugSolidColor
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.UI.DebugPlayerColor
		} else if obj.HasTags(tags.ResolvCoin) {
			c = cfg.UI.DebugCoinColor
		}
		strokeObject(screen, obj, c)
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(player)
	for _, contact := range Contacts(obj.Object) {
		strokeObject(screen, contact, cfg.UI.DebugContactColor)
	}

	if entry, ok := components.Session.First(ecs.World); ok {
		state := &components.Session.Get(entry).State
		p := state.Player
		line := fmt.Sprintf("frame %d  pos %.1f,%.1f  vel %.1f,%.1f  grounded %v  facing %s  anim %d",
			state.Frame, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Grounded, p.Facing, state.Anim.Frame)
		text.Draw(screen, line, fonts.Debug.Get(), 20, screen.Bounds().Dy()-12, cfg.UI.DebugContactColor)
	}
}

// Contacts returns the solids touching obj on any side. Touching edges do
// not count as overlap in the simulation, so the query probes one pixel out.
// Check only gathers candidates from shared cells; the box test filters them.
func Contacts(obj *resolv.Object) []*resolv.Object {
	seen := map[*resolv.Object]bool{}
	var out []*resolv.Object
	for _, d := range [][2]float64{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
		check := obj.Check(d[0], d[1], tags.ResolvSolid)
		if check == nil {
			continue
		}
		probe := sim.Box{X: obj.X + d[0], Y: obj.Y + d[1], W: obj.W, H: obj.H}
		for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
			if seen[o] || !probe.Overlaps(sim.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
				continue
			}
			seen[o] = true
			out = append(out, o)
		}
	}
	return out
}

func strokeObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 2, c, false)
}
