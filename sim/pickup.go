package sim

// CollectCoins awards CoinValue for every active coin the player overlaps
// and deactivates it. The coins slice passed in is never written to: the
// first collection copies it, so States handed out earlier stay intact.
func CollectCoins(p Params, pl Player, coins []Coin) (Player, []Coin) {
	box := pl.Box()
	copied := false

	for i, c := range coins {
		if !c.Active || !box.Overlaps(c.Box) {
			continue
		}
		if !copied {
			coins = append([]Coin(nil), coins...)
			copied = true
		}
		coins[i].Active = false
		pl.Score += p.CoinValue
	}

	return pl, coins
}
