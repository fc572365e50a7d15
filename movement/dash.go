package movement

// updateDash starts a dash on a press, holds the dash velocity while it runs
// and restores the pre-dash vertical velocity once it has expired.
func (c *Controller) updateDash(dt float64, pressed bool) {
	st := &c.st
	if pressed {
		c.tryDash()
	}
	if st.Mode != ModeDashing {
		return
	}
	if st.DashTimeRemaining <= 0 {
		c.endDash()
		return
	}
	st.Velocity = Vec2{X: c.cfg.DashSpeed * st.Facing, Y: 0}
	st.DashTimeRemaining -= dt
}

// tryDash reports whether the cooldown allowed a new dash.
func (c *Controller) tryDash() bool {
	st := &c.st
	if c.now < st.LastDashAt+c.cfg.DashCooldown {
		return false
	}
	if st.Mode != ModeDashing {
		st.preDashVelocity = st.Velocity
	}
	st.Mode = ModeDashing
	st.DashTimeRemaining = c.cfg.DashDuration
	st.LastDashAt = c.now
	c.events.fireDashStarted()
	return true
}

func (c *Controller) endDash() {
	st := &c.st
	st.Mode = st.restingMode()
	st.DashTimeRemaining = 0
	st.Velocity.Y = st.preDashVelocity.Y
}
