package camera

import (
	"fmt"
	"math"

	"github.com/milk9111/ledgehop/common"
	"github.com/milk9111/ledgehop/movement"
)

const (
	ModeSmoothDamp = "smooth_damp"
	ModeLerp       = "lerp"
)

// Config is the camera prefab.
type Config struct {
	Mode        string  `yaml:"mode"`
	FollowSpeed float64 `yaml:"follow_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	OffsetX     float64 `yaml:"offset_x"`
	OffsetY     float64 `yaml:"offset_y"`
	ViewWidth   float64 `yaml:"view_width"`
	ViewHeight  float64 `yaml:"view_height"`
}

func DefaultConfig() Config {
	return Config{
		Mode:        ModeSmoothDamp,
		FollowSpeed: 0.2,
		OffsetY:     1,
		ViewWidth:   20,
		ViewHeight:  11.25,
	}
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeSmoothDamp, ModeLerp:
	default:
		return fmt.Errorf("camera: unknown mode %q", c.Mode)
	}
	if c.FollowSpeed <= 0 || math.IsNaN(c.FollowSpeed) {
		return fmt.Errorf("camera: follow_speed must be > 0, got %g", c.FollowSpeed)
	}
	if c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		return fmt.Errorf("camera: view size must be positive")
	}
	return nil
}

// Bounds is the world rectangle the view must stay inside.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Follower eases the camera center toward a target. FollowSpeed is the
// smooth time in smooth_damp mode and the per-second lerp factor in lerp
// mode.
type Follower struct {
	cfg    Config
	pos    movement.Vec2
	vel    movement.Vec2
	bounds *Bounds
}

func NewFollower(cfg Config, start movement.Vec2) (*Follower, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Follower{cfg: cfg, pos: start}, nil
}

// Reconfigure swaps the tuning, keeping position and velocity.
func (f *Follower) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.cfg = cfg
	return nil
}

func (f *Follower) SetBounds(b *Bounds) {
	if f == nil {
		return
	}
	f.bounds = b
}

func (f *Follower) Position() movement.Vec2 {
	if f == nil {
		return movement.Vec2{}
	}
	return f.pos
}

// Snap jumps to the target without easing.
func (f *Follower) Snap(target movement.Vec2) {
	if f == nil {
		return
	}
	f.pos = f.clamp(f.goal(target))
	f.vel = movement.Vec2{}
}

// Update moves the camera one frame toward target and returns its center.
func (f *Follower) Update(target movement.Vec2, dt float64) movement.Vec2 {
	if f == nil {
		return movement.Vec2{}
	}
	goal := f.clamp(f.goal(target))
	switch f.cfg.Mode {
	case ModeLerp:
		t := common.Clamp01(f.cfg.FollowSpeed * dt)
		f.pos = movement.Vec2{
			X: common.Lerp(f.pos.X, goal.X, t),
			Y: common.Lerp(f.pos.Y, goal.Y, t),
		}
	default:
		f.pos = movement.Vec2{
			X: common.SmoothDamp(f.pos.X, goal.X, &f.vel.X, f.cfg.FollowSpeed, f.cfg.MaxSpeed, dt),
			Y: common.SmoothDamp(f.pos.Y, goal.Y, &f.vel.Y, f.cfg.FollowSpeed, f.cfg.MaxSpeed, dt),
		}
	}
	return f.pos
}

func (f *Follower) goal(target movement.Vec2) movement.Vec2 {
	return movement.Vec2{X: target.X + f.cfg.OffsetX, Y: target.Y + f.cfg.OffsetY}
}

func (f *Follower) clamp(p movement.Vec2) movement.Vec2 {
	if f.bounds == nil {
		return p
	}
	return movement.Vec2{
		X: clampAxis(p.X, f.bounds.MinX, f.bounds.MaxX, f.cfg.ViewWidth/2),
		Y: clampAxis(p.Y, f.bounds.MinY, f.bounds.MaxY, f.cfg.ViewHeight/2),
	}
}

// clampAxis keeps a view of half-extent half inside [lo, hi]. A level
// narrower than the view is centered.
func clampAxis(v, lo, hi, half float64) float64 {
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	return common.Clamp(v, lo+half, hi-half)
}

// View returns the visible world rectangle for a camera centered at c.
func (f *Follower) View() Bounds {
	if f == nil {
		return Bounds{}
	}
	hw, hh := f.cfg.ViewWidth/2, f.cfg.ViewHeight/2
	return Bounds{MinX: f.pos.X - hw, MinY: f.pos.Y - hh, MaxX: f.pos.X + hw, MaxY: f.pos.Y + hh}
}
