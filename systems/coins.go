package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins advances the idle bob of every coin, looping the tween.
func UpdateCoins(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.C.TPS))
	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		tw := components.Tween.Get(e)

		offset, _, done := tw.Update(dt)
		coin.Offset = offset
		if done {
			tw.Reset()
		}
	})
}
