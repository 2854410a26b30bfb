package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay toggle and the quit request.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if input.Action(cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Debug("debug overlay toggled", "enabled", settings.Debug)
	}
	if input.Action(cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeding the
// overlay flag from config on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Overlay})
	}
	return components.Settings.Get(entry)
}
