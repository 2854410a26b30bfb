package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Coin     = donburi.NewTag().SetName("Coin")
)

// Resolv tags for collision queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvCoin   = "coin"
)
