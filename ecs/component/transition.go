package component

import "github.com/milk9111/ledgehop/physics"

// Goal is an area that completes the level when the player enters it.
type Goal struct {
	Bounds  physics.Rect
	Reached bool
}

var GoalComponent = NewComponent[Goal]()
