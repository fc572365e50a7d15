package physics

import (
	"log"

	"github.com/milk9111/ledgehop/movement"
)

// Guard wraps a Caster and turns a panicking query into "no contact".
type Guard struct {
	Caster movement.Caster
	Name   string

	failures int
}

func NewGuard(name string, c movement.Caster) *Guard {
	return &Guard{Caster: c, Name: name}
}

func (g *Guard) CastShape(origin, size, dir movement.Vec2, maxDistance float64, mask movement.LayerMask) (hit bool) {
	if g == nil || g.Caster == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			g.failures++
			log.Printf("physics: %s cast failed (%d so far): %v", g.Name, g.failures, r)
			hit = false
		}
	}()
	return g.Caster.CastShape(origin, size, dir, maxDistance, mask)
}

// Failures is the number of recovered query panics.
func (g *Guard) Failures() int {
	if g == nil {
		return 0
	}
	return g.failures
}
