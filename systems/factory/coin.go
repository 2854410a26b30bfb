package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/sim"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin spawns the render entity for coin index of the simulation.
func CreateCoin(ecs *ecs.ECS, space *resolv.Space, index int, box sim.Box, img *ebiten.Image) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	obj := newBoxObject(box, tags.ResolvCoin)
	obj.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Coin.SetValue(coin, components.CoinData{Index: index})
	components.Sprite.SetValue(coin, components.SpriteData{
		Image: img,
		Scale: assets.FitScale(img.Bounds(), box.W),
	})

	// Idle bob, purely visual: the pickup box never moves.
	h, d := cfg.Coin.BobHeight, cfg.Coin.BobDuration
	components.Tween.Set(coin, gween.NewSequence(
		gween.New(0, -h, d, ease.InOutSine),
		gween.New(-h, 0, d, ease.InOutSine),
	))

	return coin
}
