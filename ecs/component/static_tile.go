package component

import "github.com/milk9111/ledgehop/physics"

// StaticTile is one merged level collider, kept for drawing.
type StaticTile struct {
	Rect physics.Rect
}

var StaticTileComponent = NewComponent[StaticTile]()
