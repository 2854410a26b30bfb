package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors an entity's box into the resolv space. The simulation
// owns positions; the mirror only serves contact queries and debug drawing.
type ObjectData struct {
	*resolv.Object
}

// MoveTo places the object at x, y and refreshes its space cells.
func (o *ObjectData) MoveTo(x, y float64) {
	if o.X == x && o.Y == y {
		return
	}
	o.X = x
	o.Y = y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
