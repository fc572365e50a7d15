package physics

import (
	"math"

	"github.com/milk9111/ledgehop/movement"
	"github.com/solarlune/resolv"
)

const (
	gridScale = 16.0
	tagStatic = "static"
)

// Grid is a kinematic alternative to Space built on a resolv cell space.
// resolv narrows the candidates; the final overlap test is an exact AABB
// check in world units.
type Grid struct {
	space   *resolv.Space
	probe   *resolv.Object
	statics map[*resolv.Object]Rect

	player    Rect
	velocity  movement.Vec2
	spawned   bool
	hazardHit bool
}

// NewGrid creates a grid covering width x height world units.
func NewGrid(width, height float64) *Grid {
	w := int(math.Ceil(math.Max(width, 1) * gridScale))
	h := int(math.Ceil(math.Max(height, 1) * gridScale))
	space := resolv.NewSpace(w, h, int(gridScale), int(gridScale))

	probe := resolv.NewObject(0, 0, gridScale, gridScale)
	probe.SetShape(resolv.NewRectangle(0, 0, gridScale, gridScale))
	space.Add(probe)

	return &Grid{
		space:   space,
		probe:   probe,
		statics: make(map[*resolv.Object]Rect),
	}
}

// SetStatics replaces the static level geometry.
func (g *Grid) SetStatics(rects []Rect) {
	if g == nil || g.space == nil {
		return
	}
	for obj := range g.statics {
		g.space.Remove(obj)
	}
	g.statics = make(map[*resolv.Object]Rect, len(rects))
	for _, r := range rects {
		tags := append([]string{tagStatic}, r.Layer.Names()...)
		obj := resolv.NewObject(r.X*gridScale, r.Y*gridScale, r.Width*gridScale, r.Height*gridScale, tags...)
		obj.SetShape(resolv.NewRectangle(0, 0, r.Width*gridScale, r.Height*gridScale))
		g.space.Add(obj)
		g.statics[obj] = r
	}
}

// overlapping returns the static rects on mask that overlap r.
func (g *Grid) overlapping(r Rect, mask movement.LayerMask) []Rect {
	g.probe.X = r.X * gridScale
	g.probe.Y = r.Y * gridScale
	g.probe.W = math.Max(r.Width*gridScale, 1e-6)
	g.probe.H = math.Max(r.Height*gridScale, 1e-6)
	g.probe.Update()

	check := g.probe.Check(0, 0, tagStatic)
	if check == nil {
		return nil
	}
	var out []Rect
	for _, obj := range check.ObjectsByTags(tagStatic) {
		other, ok := g.statics[obj]
		if !ok || !other.Layer.Has(mask) {
			continue
		}
		if other.Intersects(r) {
			out = append(out, other)
		}
	}
	return out
}

func solidMask() movement.LayerMask {
	return movement.LayerGround | movement.LayerWall
}

// CastShape implements movement.Caster. The probed region is the strip
// beyond the leading face of the box, from the center line out to
// maxDistance, inset sideways so adjacent walls do not read as floor.
func (g *Grid) CastShape(origin, size, dir movement.Vec2, maxDistance float64, mask movement.LayerMask) bool {
	if g == nil || g.space == nil {
		return false
	}
	mask &^= movement.LayerPlayer | movement.LayerHazard
	if mask == movement.LayerNone || (dir.X == 0 && dir.Y == 0) {
		return false
	}
	hw, hh := size.X/2, size.Y/2
	var strip Rect
	switch {
	case dir.X == 0:
		in := hw * 0.9
		strip = Rect{X: origin.X - in, Width: 2 * in, Height: hh + maxDistance}
		if dir.Y < 0 {
			strip.Y = origin.Y - hh - maxDistance
		} else {
			strip.Y = origin.Y
		}
	default:
		in := hh * 0.9
		strip = Rect{Y: origin.Y - in, Height: 2 * in, Width: hw + maxDistance}
		if dir.X < 0 {
			strip.X = origin.X - hw - maxDistance
		} else {
			strip.X = origin.X
		}
	}
	return len(g.overlapping(strip, mask)) > 0
}

func (g *Grid) SpawnPlayer(center, size movement.Vec2) {
	if g == nil {
		return
	}
	g.player = RectAround(center, size)
	g.velocity = movement.Vec2{}
	g.spawned = true
}

func (g *Grid) PlayerBody() movement.Body {
	if g == nil || !g.spawned {
		return movement.Body{}
	}
	return movement.Body{
		Center: g.player.Center(),
		Size:   movement.Vec2{X: g.player.Width, Y: g.player.Height},
	}
}

func (g *Grid) SetPlayerVelocity(v movement.Vec2) {
	if g == nil {
		return
	}
	g.velocity = v
}

func (g *Grid) PlayerVelocity() movement.Vec2 {
	if g == nil {
		return movement.Vec2{}
	}
	return g.velocity
}

func (g *Grid) TakeHazardHit() bool {
	if g == nil {
		return false
	}
	hit := g.hazardHit
	g.hazardHit = false
	return hit
}

// Step moves the player one axis at a time, stopping flush against solids.
func (g *Grid) Step(dt float64) {
	if g == nil || !g.spawned || dt <= 0 {
		return
	}

	if dx := g.velocity.X * dt; dx != 0 {
		next := g.player
		next.X += dx
		if hits := g.overlapping(next, solidMask()); len(hits) > 0 {
			for _, h := range hits {
				if dx > 0 {
					next.X = math.Min(next.X, h.X-next.Width)
				} else {
					next.X = math.Max(next.X, h.X+h.Width)
				}
			}
			g.velocity.X = 0
		}
		g.player = next
	}

	if dy := g.velocity.Y * dt; dy != 0 {
		next := g.player
		next.Y += dy
		if hits := g.overlapping(next, solidMask()); len(hits) > 0 {
			for _, h := range hits {
				if dy > 0 {
					next.Y = math.Min(next.Y, h.Y-next.Height)
				} else {
					next.Y = math.Max(next.Y, h.Y+h.Height)
				}
			}
			g.velocity.Y = 0
		}
		g.player = next
	}

	if len(g.overlapping(g.player, movement.LayerHazard)) > 0 {
		g.hazardHit = true
	}
}
