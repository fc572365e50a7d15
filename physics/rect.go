package physics

import "github.com/milk9111/ledgehop/movement"

// Rect is an axis-aligned box in world units. X, Y is the bottom-left corner
// and Y points up.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Layer         movement.LayerMask
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Center() movement.Vec2 {
	return movement.Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// RectAround builds a rect of the given size centered on c.
func RectAround(c, size movement.Vec2) Rect {
	return Rect{X: c.X - size.X/2, Y: c.Y - size.Y/2, Width: size.X, Height: size.Y}
}

// probeSegments returns the segments swept across the leading face of a box
// of the given size centered on origin, moving along an axis direction. Each
// segment starts on the box's center line so a slightly penetrating body
// still reports contact.
func probeSegments(origin, size, dir movement.Vec2, maxDistance float64) [][2]movement.Vec2 {
	hw, hh := size.X/2, size.Y/2
	var (
		reach   float64
		offsets [3]movement.Vec2
	)
	if dir.X == 0 {
		reach = hh + maxDistance
		in := hw * 0.9
		offsets = [3]movement.Vec2{{X: -in}, {}, {X: in}}
	} else {
		reach = hw + maxDistance
		in := hh * 0.9
		offsets = [3]movement.Vec2{{Y: -in}, {}, {Y: in}}
	}
	d := dir.Normalize()
	out := make([][2]movement.Vec2, 0, len(offsets))
	for _, o := range offsets {
		start := origin.Add(o)
		out = append(out, [2]movement.Vec2{start, start.Add(d.Scale(reach))})
	}
	return out
}
