package movement

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("movement: invalid config")

// Config holds the tuning values for a Controller. A Controller never mutates
// it; replacing it goes through Controller.Reconfigure.
type Config struct {
	MaxSpeed          float64 `yaml:"max_speed"`
	JumpPower         float64 `yaml:"jump_power"`
	FallAcceleration  float64 `yaml:"fall_acceleration"`
	InAirAcceleration float64 `yaml:"in_air_acceleration"`
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`

	GroundCheckDistance float64 `yaml:"ground_check_distance"`
	WallCheckDistance   float64 `yaml:"wall_check_distance"`

	CoyoteTime        float64 `yaml:"coyote_time"`
	JumpBuffer        float64 `yaml:"jump_buffer"`
	JumpCutMultiplier float64 `yaml:"jump_cut_multiplier"`
	MaxJumpCount      int     `yaml:"max_jump_count"`

	WallJumpPower  float64 `yaml:"wall_jump_power"`
	WallJumpLock   float64 `yaml:"wall_jump_lock"`
	WallSlideSpeed float64 `yaml:"wall_slide_speed"`

	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`

	GroundMask LayerMask `yaml:"ground_layers"`
	WallMask   LayerMask `yaml:"wall_layers"`
}

// DefaultConfig returns the stock player tuning, in seconds and units/second.
func DefaultConfig() Config {
	return Config{
		MaxSpeed:            10,
		JumpPower:           15,
		FallAcceleration:    30,
		InAirAcceleration:   15,
		MaxFallSpeed:        20,
		GroundCheckDistance: 0.1,
		WallCheckDistance:   0.2,
		CoyoteTime:          0.2,
		JumpBuffer:          0,
		JumpCutMultiplier:   0.5,
		MaxJumpCount:        2,
		WallJumpPower:       15,
		WallJumpLock:        0.2,
		WallSlideSpeed:      3,
		DashSpeed:           30,
		DashDuration:        0.3,
		DashCooldown:        0.8,
		GroundMask:          LayerGround,
		WallMask:            LayerWall,
	}
}

// Validate rejects values that would make the state machine misbehave.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"max_speed", c.MaxSpeed},
		{"jump_power", c.JumpPower},
		{"fall_acceleration", c.FallAcceleration},
		{"in_air_acceleration", c.InAirAcceleration},
		{"max_fall_speed", c.MaxFallSpeed},
		{"ground_check_distance", c.GroundCheckDistance},
		{"wall_check_distance", c.WallCheckDistance},
		{"coyote_time", c.CoyoteTime},
		{"jump_buffer", c.JumpBuffer},
		{"jump_cut_multiplier", c.JumpCutMultiplier},
		{"wall_jump_power", c.WallJumpPower},
		{"wall_jump_lock", c.WallJumpLock},
		{"wall_slide_speed", c.WallSlideSpeed},
		{"dash_speed", c.DashSpeed},
		{"dash_duration", c.DashDuration},
		{"dash_cooldown", c.DashCooldown},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %g", ErrInvalidConfig, f.name, f.value)
		}
	}
	if c.JumpCutMultiplier > 1 {
		return fmt.Errorf("%w: jump_cut_multiplier must be <= 1, got %g", ErrInvalidConfig, c.JumpCutMultiplier)
	}
	if c.MaxJumpCount < 1 {
		return fmt.Errorf("%w: max_jump_count must be >= 1, got %d", ErrInvalidConfig, c.MaxJumpCount)
	}
	return nil
}
