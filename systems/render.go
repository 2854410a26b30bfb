package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/sim"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground clears the screen to the sky color.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)
}

// DrawPlatforms renders every platform tile scaled to its box.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
		drawOp.GeoM.Translate(o.X, o.Y)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawCoins renders the coins that are still active in the simulation.
func DrawCoins(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	coins := components.Session.Get(entry).State.Coins

	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		if coin.Index >= len(coins) || !coins[coin.Index].Active {
			return
		}
		box := coins[coin.Index].Box
		sprite := components.Sprite.Get(e)

		// Center the uniformly scaled image inside the coin box.
		b := sprite.Image.Bounds()
		w := float64(b.Dx()) * sprite.Scale
		h := float64(b.Dy()) * sprite.Scale

		drawOp.GeoM.Reset()
		drawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
		drawOp.GeoM.Translate(box.X+(box.W-w)/2, box.Y+(box.H-h)/2+float64(coin.Offset))
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawPlayer renders the current walk frame, mirrored when facing left.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	state := &components.Session.Get(entry).State
	anim := components.Animation.Get(player)

	img := anim.Sheet.Frame(int(state.Anim.Frame))
	b := img.Bounds()
	p := state.Player

	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(p.Size.X/float64(b.Dx()), p.Size.Y/float64(b.Dy()))
	if p.Facing == sim.FacingLeft {
		// Mirror around the sprite's own width so the box stays put.
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(p.Size.X, 0)
	}
	drawOp.GeoM.Translate(p.Pos.X, p.Pos.Y)
	screen.DrawImage(img, drawOp)
}
