package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/sim"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player entity at the spawn box of p.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, p sim.Player, sheet *animations.Sheet) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := newBoxObject(p.Box(), tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Animation.SetValue(player, components.AnimationData{Sheet: sheet})

	return player
}
