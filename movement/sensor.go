package movement

// Caster is the physics oracle. CastShape sweeps a capsule of the given size
// centered on origin along direction for up to maxDistance and reports
// whether it touches anything on the mask. Implementations must not mutate
// simulation state.
type Caster interface {
	CastShape(origin, size, direction Vec2, maxDistance float64, mask LayerMask) bool
}

// CasterFunc adapts a function to Caster.
type CasterFunc func(origin, size, direction Vec2, maxDistance float64, mask LayerMask) bool

func (f CasterFunc) CastShape(origin, size, direction Vec2, maxDistance float64, mask LayerMask) bool {
	return f(origin, size, direction, maxDistance, mask)
}

// Body is the collider the controller probes from.
type Body struct {
	Center Vec2
	Size   Vec2
}

var down = Vec2{X: 0, Y: -1}

func (c *Controller) queryGroundContact(body Body) bool {
	return c.caster.CastShape(body.Center, body.Size, down, c.cfg.GroundCheckDistance, c.cfg.GroundMask)
}

func (c *Controller) queryWallContact(body Body) bool {
	dir := Vec2{X: c.st.Facing}
	return c.caster.CastShape(body.Center, body.Size, dir, c.cfg.WallCheckDistance, c.cfg.WallMask)
}

// senseWall updates the wall contact reading.
func (c *Controller) senseWall(body Body) {
	c.st.TouchingWall = c.queryWallContact(body)
}

// senseGround updates the ground reading and handles landing and lift-off.
// An ascending body is never grounded, so the step after a jump always
// reports lift-off even if the probe still reaches the floor.
func (c *Controller) senseGround(body Body) {
	contact := c.queryGroundContact(body)
	was := c.st.Grounded
	now := contact && c.st.Velocity.Y <= 0
	c.st.Grounded = now

	if now {
		c.st.JumpCount = 0
		if c.st.Velocity.Y < 0 {
			c.st.Velocity.Y = 0
		}
	}

	switch {
	case now && !was:
		c.st.CanCoyoteJump = true
		c.st.JumpCutArmed = false
		if c.st.Mode == ModeWallSliding {
			c.st.Mode = ModeIdle
		}
		c.events.fireGroundedChanged(true)
	case !now && was:
		c.st.LeftGroundAt = c.now
		c.st.CanCoyoteJump = c.st.JumpCount == 0
		c.events.fireGroundedChanged(false)
	}
}
