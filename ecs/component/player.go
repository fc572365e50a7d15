package component

import "github.com/milk9111/ledgehop/movement"

// Player binds the movement controller to the physics body it drives.
type Player struct {
	Controller *movement.Controller
	Width      float64
	Height     float64
	Deaths     int
}

var PlayerComponent = NewComponent[Player]()
