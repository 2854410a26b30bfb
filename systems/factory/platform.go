package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/sim"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a solid tile and registers it with space.
func CreatePlatform(ecs *ecs.ECS, space *resolv.Space, box sim.Box, img *ebiten.Image) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := newBoxObject(box, tags.ResolvSolid)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Sprite.SetValue(platform, components.SpriteData{
		Image: img,
		Scale: assets.FitScale(img.Bounds(), box.W),
	})

	return platform
}

func newBoxObject(box sim.Box, resolvTags ...string) *resolv.Object {
	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, box.W, box.H))
	return obj
}
