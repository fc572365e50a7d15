package physics

import (
	"fmt"

	"github.com/milk9111/ledgehop/movement"
)

// World is the physics backend the game steps: it moves the player body and
// answers the controller's shape casts.
type World interface {
	movement.Caster
	SetStatics(rects []Rect)
	SpawnPlayer(center, size movement.Vec2)
	PlayerBody() movement.Body
	SetPlayerVelocity(v movement.Vec2)
	PlayerVelocity() movement.Vec2
	TakeHazardHit() bool
	Step(dt float64)
}

const (
	BackendChipmunk = "chipmunk"
	BackendResolv   = "resolv"
)

// NewWorld builds the named backend sized for a width x height level.
func NewWorld(backend string, width, height float64) (World, error) {
	switch backend {
	case "", BackendChipmunk:
		return NewSpace(), nil
	case BackendResolv:
		return NewGrid(width, height), nil
	default:
		return nil, fmt.Errorf("physics: unknown backend %q", backend)
	}
}

var (
	_ World = (*Space)(nil)
	_ World = (*Grid)(nil)
)
