package movement

import "math"

// updateWallSlide derives the wall-slide mode from the sensor readings.
func (c *Controller) updateWallSlide() {
	st := &c.st
	if st.Mode == ModeDashing {
		return
	}

	if st.Mode == ModeWallSliding {
		if st.TouchingWall && !st.Grounded && st.Velocity.Y <= 0 {
			return
		}
		st.Mode = st.restingMode()
		if !st.Grounded {
			// letting go of a wall grants the same grace as a ledge
			st.LeftGroundAt = c.now
			st.CanCoyoteJump = st.JumpCount == 0
		}
		return
	}

	if st.TouchingWall && !st.Grounded && st.Velocity.Y < 0 {
		st.Mode = ModeWallSliding
		st.JumpCount = 0
		st.CanCoyoteJump = false
		st.JumpCutArmed = false
		return
	}
	st.Mode = st.restingMode()
}

// applyWallSlide caps the fall speed while sliding. It never pushes the
// entity upward.
func (c *Controller) applyWallSlide() {
	st := &c.st
	if st.Mode != ModeWallSliding {
		return
	}
	st.Velocity.Y = math.Max(st.Velocity.Y, -c.cfg.WallSlideSpeed)
}
