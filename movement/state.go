package movement

import "math"

// State is the mutable movement state of one entity. Only the Controller
// that owns it writes to it.
type State struct {
	Velocity  Vec2
	InputAxis Vec2
	JumpHeld  bool
	Facing    float64
	Mode      Mode

	Grounded     bool
	TouchingWall bool

	JumpRequested   bool
	JumpRequestedAt float64
	JumpCount       int
	CanCoyoteJump   bool
	JumpCutArmed    bool

	LeftGroundAt      float64
	WallJumpLockUntil float64

	LastDashAt        float64
	DashTimeRemaining float64
	preDashVelocity   Vec2
}

func newState() State {
	return State{
		Facing:            1,
		Mode:              ModeAirborne,
		LeftGroundAt:      math.Inf(-1),
		WallJumpLockUntil: math.Inf(-1),
		LastDashAt:        math.Inf(-1),
	}
}

func (s State) IsGrounded() bool     { return s.Grounded }
func (s State) IsTouchingWall() bool { return s.TouchingWall }
func (s State) IsWallSliding() bool  { return s.Mode == ModeWallSliding }
func (s State) IsDashing() bool      { return s.Mode == ModeDashing }

// restingMode is the mode an entity falls back to when it is neither dashing
// nor wall sliding.
func (s State) restingMode() Mode {
	if s.Grounded {
		return ModeIdle
	}
	return ModeAirborne
}
