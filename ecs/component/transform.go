package component

// Transform is an entity's center in world units, Y up.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
