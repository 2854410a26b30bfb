package systems

import (
	"fmt"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const playerLabel = "Player"

// DrawHUD renders the score and health readouts in the top-left corner and
// the label above the player.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	state := &components.Session.Get(entry).State

	hud := fonts.HUD.Get()
	ascent := hud.Metrics().Ascent.Ceil()
	score, health := hudLines(state)
	text.Draw(screen, score, hud, cfg.UI.ScoreX, cfg.UI.ScoreY+ascent, cfg.UI.TextColor)
	text.Draw(screen, health, hud, cfg.UI.HealthX, cfg.UI.HealthY+ascent, cfg.UI.TextColor)

	label := fonts.Label.Get()
	x, y := labelPosition(state.Player, font.MeasureString(label, playerLabel).Ceil())
	text.Draw(screen, playerLabel, label, x, y, cfg.UI.TextColor)
}

func hudLines(state *sim.State) (score, health string) {
	return fmt.Sprintf("Score: %d", state.Player.Score), fmt.Sprintf("Health: %d", state.Player.Health)
}

// labelPosition centers a label of width w over the player box, with its
// baseline LabelOffset pixels above the box.
func labelPosition(p sim.Player, w int) (int, int) {
	x := p.Pos.X + (p.Size.X-float64(w))/2
	y := p.Pos.Y - float64(cfg.UI.LabelOffset)
	return int(x), int(y)
}
