package movement

// resolveJump applies the first matching jump rule: regular or extra jump,
// wall jump, coyote jump, then jump cut.
func (c *Controller) resolveJump() {
	c.expireCoyote()

	st := &c.st
	dashing := st.Mode == ModeDashing
	sliding := st.Mode == ModeWallSliding

	switch {
	case st.JumpRequested && !dashing && !sliding &&
		(st.Grounded || (st.JumpCount < c.cfg.MaxJumpCount && !c.coyoteOpen())):
		c.regularJump()
	case sliding && st.JumpRequested:
		c.wallJump()
	case st.JumpRequested && !dashing && c.coyoteOpen():
		c.coyoteJump()
	case !st.JumpHeld && st.Velocity.Y > 0 && st.JumpCutArmed:
		st.Velocity.Y *= c.cfg.JumpCutMultiplier
		st.JumpCutArmed = false
	}

	if st.Velocity.Y <= 0 {
		st.JumpCutArmed = false
	}
}

func (c *Controller) regularJump() {
	st := &c.st
	st.Velocity.Y = c.cfg.JumpPower
	st.JumpCount++
	st.CanCoyoteJump = false
	st.JumpCutArmed = true
	c.consumeJump()
}

func (c *Controller) wallJump() {
	st := &c.st
	dir := Vec2{X: -st.Facing, Y: 1}.Normalize()
	st.Velocity = dir.Scale(c.cfg.WallJumpPower)
	st.JumpCount = 0
	st.Mode = ModeAirborne
	st.CanCoyoteJump = false
	st.JumpCutArmed = false
	st.WallJumpLockUntil = c.now + c.cfg.WallJumpLock
	c.consumeJump()
}

func (c *Controller) coyoteJump() {
	st := &c.st
	st.Velocity.Y = c.cfg.JumpPower
	st.JumpCount = 1
	st.CanCoyoteJump = false
	st.JumpCutArmed = true
	c.consumeJump()
}

func (c *Controller) consumeJump() {
	c.st.JumpRequested = false
	c.events.fireJumped()
}

// coyoteOpen reports whether a grace jump is still available after leaving
// the ground or a wall without jumping.
func (c *Controller) coyoteOpen() bool {
	st := &c.st
	return st.CanCoyoteJump && !st.Grounded && c.now < st.LeftGroundAt+c.cfg.CoyoteTime
}

// expireCoyote closes a lapsed grace window. The unused ground jump is
// forfeited, leaving only the extra jumps.
func (c *Controller) expireCoyote() {
	st := &c.st
	if st.Grounded || !st.CanCoyoteJump || c.coyoteOpen() {
		return
	}
	st.CanCoyoteJump = false
	if st.JumpCount == 0 {
		st.JumpCount = 1
	}
}

// expireJumpRequest drops a latch older than the jump buffer. A zero buffer
// keeps the latch for the step it was pressed in only.
func (c *Controller) expireJumpRequest() {
	st := &c.st
	if st.JumpRequested && c.now-st.JumpRequestedAt >= c.cfg.JumpBuffer {
		st.JumpRequested = false
	}
}
