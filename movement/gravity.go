package movement

// applyGravity moves vertical velocity linearly toward -MaxFallSpeed. Rising
// without jump held uses the stronger fall acceleration.
func (c *Controller) applyGravity(dt float64) {
	st := &c.st
	if st.Grounded {
		return
	}
	accel := c.cfg.InAirAcceleration
	if st.Velocity.Y > 0 && !st.JumpHeld {
		accel = c.cfg.FallAcceleration
	}
	st.Velocity.Y = moveTowards(st.Velocity.Y, -c.cfg.MaxFallSpeed, accel*dt)
}
