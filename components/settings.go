package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug bool // Collider overlay visible
	Quit  bool // Set once the player asked to close the window
}

var Settings = donburi.NewComponentType[SettingsData]()
