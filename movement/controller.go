package movement

import (
	"errors"
	"math"
)

var ErrNilCaster = errors.New("movement: nil caster")

// Controller is the movement state machine for a single entity. Step must be
// called once per fixed simulation step from a single goroutine.
type Controller struct {
	cfg     Config
	caster  Caster
	intents IntentBuffer
	events  Events
	st      State
	now     float64
}

// NewController validates cfg and returns a controller probing through caster.
func NewController(cfg Config, caster Caster) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if caster == nil {
		return nil, ErrNilCaster
	}
	return &Controller{
		cfg:    cfg,
		caster: caster,
		st:     newState(),
	}, nil
}

// Reconfigure swaps the tuning between steps. The current state is kept.
func (c *Controller) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *Controller) Config() Config { return c.cfg }

// Intents returns the buffer input sources write into.
func (c *Controller) Intents() *IntentBuffer { return &c.intents }

// Events returns the observer registry.
func (c *Controller) Events() *Events { return &c.events }

// State returns a copy of the current state.
func (c *Controller) State() State { return c.st }

func (c *Controller) Mode() Mode { return c.st.Mode }

func (c *Controller) Velocity() Vec2 { return c.st.Velocity }

// Now is the simulation clock in seconds.
func (c *Controller) Now() float64 { return c.now }

// Reset returns the state machine to its spawn state, e.g. after a respawn.
// Config, observers and the clock are kept; queued presses are dropped.
func (c *Controller) Reset() {
	c.st = newState()
	c.intents.Clear()
}

// SyncVelocity feeds back the velocity left after collision resolution.
func (c *Controller) SyncVelocity(v Vec2) {
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		return
	}
	c.st.Velocity = v
}

// Step advances the state machine by dt seconds and returns the velocity the
// body should move with.
func (c *Controller) Step(dt float64, body Body) Vec2 {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return c.st.Velocity
	}
	c.now += dt

	frame := c.intents.Take()
	c.readIntents(frame)

	c.senseWall(body)
	c.senseGround(body)
	c.updateWallSlide()
	c.resolveJump()
	c.applyMovement()
	c.applyGravity(dt)
	c.applyWallSlide()
	c.updateDash(dt, frame.DashPressed)

	c.expireJumpRequest()
	return c.st.Velocity
}

func (c *Controller) readIntents(f Frame) {
	c.st.InputAxis = f.Axis
	c.st.JumpHeld = f.JumpHeld
	if f.Axis.X != 0 {
		c.st.Facing = sign(f.Axis.X)
	}
	if f.JumpPressed {
		c.st.JumpRequested = true
		c.st.JumpRequestedAt = c.now
	}
}

func (c *Controller) applyMovement() {
	if c.now < c.st.WallJumpLockUntil {
		return
	}
	c.st.Velocity.X = c.st.InputAxis.X * c.cfg.MaxSpeed
}
