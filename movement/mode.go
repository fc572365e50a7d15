package movement

// Mode is the movement mode of a controlled entity. Exactly one mode is
// active per step; sensor readings (grounded, touching wall) are tracked
// separately because they are inputs, not modes.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAirborne
	ModeWallSliding
	ModeDashing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAirborne:
		return "airborne"
	case ModeWallSliding:
		return "wall_slide"
	case ModeDashing:
		return "dash"
	default:
		return "unknown"
	}
}
