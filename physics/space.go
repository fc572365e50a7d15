package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ledgehop/movement"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeHazard
	collisionTypePlayer
)

// contactSkin is the overlap below which two boxes count as touching.
const contactSkin = 1e-9

// Space owns the Chipmunk space, the static level shapes and the player
// body. Gravity stays zero: the movement controller integrates it.
//
// The player is a kinematic box. Step moves it one axis at a time and stops
// it flush against solids found through the space's spatial index, so a
// velocity pushed into a wall every step can never sink the body. Chipmunk
// still steps the space to report hazard sensor contacts.
type Space struct {
	space       *cp.Space
	statics     []*cp.Shape
	player      *cp.Body
	playerShape *cp.Shape
	playerSize  movement.Vec2
	velocity    movement.Vec2

	hazardHit bool
}

// NewSpace creates an empty space.
func NewSpace() *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	s := &Space{space: space}
	s.setupHandlers()
	return s
}

// SetStatics replaces the static level geometry.
func (s *Space) SetStatics(rects []Rect) {
	if s == nil || s.space == nil {
		return
	}
	for _, shape := range s.statics {
		s.space.RemoveShape(shape)
	}
	s.statics = s.statics[:0]
	for _, r := range rects {
		s.addStatic(r)
	}
}

func (s *Space) addStatic(r Rect) {
	bb := cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(r.Layer),
		Mask:       cp.ALL_CATEGORIES,
	})
	if r.Layer.Has(movement.LayerHazard) {
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeHazard)
	} else {
		shape.SetCollisionType(collisionTypeSolid)
	}
	s.space.AddShape(shape)
	s.statics = append(s.statics, shape)
}

// SpawnPlayer creates the player body, or teleports it if it exists.
func (s *Space) SpawnPlayer(center, size movement.Vec2) {
	if s == nil || s.space == nil {
		return
	}
	if s.player != nil && s.playerSize == size {
		s.player.SetPosition(cp.Vector{X: center.X, Y: center.Y})
		s.player.SetVelocity(0, 0)
		s.velocity = movement.Vec2{}
		return
	}
	if s.player != nil {
		s.space.RemoveShape(s.playerShape)
		s.space.RemoveBody(s.player)
	}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: center.X, Y: center.Y})
	shape := cp.NewBox(body, size.X, size.Y, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(movement.LayerPlayer),
		Mask:       cp.ALL_CATEGORIES,
	})
	s.space.AddBody(body)
	s.space.AddShape(shape)

	s.player = body
	s.playerShape = shape
	s.playerSize = size
	s.velocity = movement.Vec2{}
}

// CP exposes the underlying chipmunk space for debug drawing.
func (s *Space) CP() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// PlayerBody returns the collider the controller probes from.
func (s *Space) PlayerBody() movement.Body {
	if s == nil || s.player == nil {
		return movement.Body{}
	}
	p := s.player.Position()
	return movement.Body{Center: movement.Vec2{X: p.X, Y: p.Y}, Size: s.playerSize}
}

func (s *Space) SetPlayerVelocity(v movement.Vec2) {
	if s == nil || s.player == nil {
		return
	}
	s.velocity = v
}

// PlayerVelocity is the velocity left after the last Step: the component
// into any blocking surface is zeroed.
func (s *Space) PlayerVelocity() movement.Vec2 {
	if s == nil || s.player == nil {
		return movement.Vec2{}
	}
	return s.velocity
}

// TakeHazardHit reports whether the player touched a hazard since the last
// call.
func (s *Space) TakeHazardHit() bool {
	if s == nil {
		return false
	}
	hit := s.hazardHit
	s.hazardHit = false
	return hit
}

// Step moves the player, x first then y, and advances the space.
func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil || dt <= 0 {
		return
	}
	if s.player != nil {
		if s.moveAxis(s.velocity.X*dt, 0) {
			s.velocity.X = 0
		}
		if s.moveAxis(0, s.velocity.Y*dt) {
			s.velocity.Y = 0
		}
		// the body is placed directly; chipmunk must not integrate it again
		s.player.SetVelocity(0, 0)
	}
	s.space.Step(dt)
}

// moveAxis translates the player by (dx, dy), where one of them is zero, and
// stops it flush at the first solid face the swept box meets. Solids the box
// already overlaps are ignored so a bad spawn can walk out. It reports
// whether a solid blocked the move.
func (s *Space) moveAxis(dx, dy float64) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	pos := s.player.Position()
	hx, hy := s.playerSize.X/2, s.playerSize.Y/2
	cur := cp.NewBBForExtents(pos, hx, hy)
	next := cp.Vector{X: pos.X + dx, Y: pos.Y + dy}
	swept := cur.Merge(cp.NewBBForExtents(next, hx, hy))

	blocked := false
	s.space.BBQuery(swept, solidFilter(), func(shape *cp.Shape, _ interface{}) {
		if shape == s.playerShape || shape.Sensor() {
			return
		}
		o := shape.BB()
		switch {
		case dx != 0 && (o.T-cur.B <= contactSkin || cur.T-o.B <= contactSkin):
			return
		case dy != 0 && (o.R-cur.L <= contactSkin || cur.R-o.L <= contactSkin):
			return
		}
		switch {
		case dx > 0 && o.L >= cur.R-contactSkin && o.L-hx < next.X:
			next.X = o.L - hx
		case dx < 0 && o.R <= cur.L+contactSkin && o.R+hx > next.X:
			next.X = o.R + hx
		case dy > 0 && o.B >= cur.T-contactSkin && o.B-hy < next.Y:
			next.Y = o.B - hy
		case dy < 0 && o.T <= cur.B+contactSkin && o.T+hy > next.Y:
			next.Y = o.T + hy
		default:
			return
		}
		blocked = true
	}, nil)

	s.player.SetPosition(next)
	return blocked
}

func solidFilter() cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: cp.ALL_CATEGORIES,
		Mask:       uint(solidMask()),
	}
}

// CastShape implements movement.Caster with segment queries fanned across the
// leading face of the box. The player's own layer is never reported.
func (s *Space) CastShape(origin, size, dir movement.Vec2, maxDistance float64, mask movement.LayerMask) bool {
	if s == nil || s.space == nil {
		return false
	}
	mask &^= movement.LayerPlayer
	if mask == movement.LayerNone || (dir.X == 0 && dir.Y == 0) {
		return false
	}
	filter := cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: cp.ALL_CATEGORIES,
		Mask:       uint(mask),
	}
	for _, seg := range probeSegments(origin, size, dir, maxDistance) {
		info := s.space.SegmentQueryFirst(
			cp.Vector{X: seg[0].X, Y: seg[0].Y},
			cp.Vector{X: seg[1].X, Y: seg[1].Y},
			0,
			filter,
		)
		if info.Shape != nil && !info.Shape.Sensor() {
			return true
		}
	}
	return false
}

func (s *Space) setupHandlers() {
	solid := s.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	solid.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		return false
	}

	hazard := s.space.NewCollisionHandler(collisionTypePlayer, collisionTypeHazard)
	hazard.UserData = s
	hazard.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if owner, ok := userData.(*Space); ok && owner != nil {
			owner.hazardHit = true
		}
		return true
	}
}
