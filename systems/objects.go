package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors the simulation state into the resolv space: the
// player object follows the player box and collected coins leave the space.
func UpdateObjects(ecs *ecs.ECS) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	state := &components.Session.Get(entry).State

	if player, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(player)
		obj.MoveTo(state.Player.Pos.X, state.Player.Pos.Y)
	}

	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		coin := components.Coin.Get(e)
		obj := components.Object.Get(e)
		if coin.Index >= len(state.Coins) || state.Coins[coin.Index].Active {
			return
		}
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	})
}
