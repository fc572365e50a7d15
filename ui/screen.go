package ui

import (
	"fmt"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

type ScreenType int

const (
	MainMenu ScreenType = iota
	Gameplay
	Settings
	Pause
	Completed
	GameOver
	Quit
	Shop
	Inventory
	Achievements
	LevelSelection
	Leaderboard
	RateUs
)

var screenTypeNames = [...]string{
	MainMenu:       "MAIN_MENU",
	Gameplay:       "GAMEPLAY",
	Settings:       "SETTINGS",
	Pause:          "PAUSE",
	Completed:      "COMPLETED",
	GameOver:       "GAME_OVER",
	Quit:           "QUIT",
	Shop:           "SHOP",
	Inventory:      "INVENTORY",
	Achievements:   "ACHIEVEMENTS",
	LevelSelection: "LEVEL_SELECTION",
	Leaderboard:    "LEADERBOARD",
	RateUs:         "RATE_US",
}

func (t ScreenType) String() string {
	if t < 0 || int(t) >= len(screenTypeNames) {
		return fmt.Sprintf("ScreenType(%d)", int(t))
	}
	return screenTypeNames[t]
}

func ParseScreenType(name string) (ScreenType, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range screenTypeNames {
		if n == name {
			return ScreenType(i), nil
		}
	}
	return 0, fmt.Errorf("ui: unknown screen type %q", name)
}

func (t *ScreenType) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseScreenType(node.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

var easings = map[string]ease.TweenFunc{
	"linear":        ease.Linear,
	"in_quad":       ease.InQuad,
	"out_quad":      ease.OutQuad,
	"in_out_quad":   ease.InOutQuad,
	"in_cubic":      ease.InCubic,
	"out_cubic":     ease.OutCubic,
	"in_out_cubic":  ease.InOutCubic,
	"in_sine":       ease.InSine,
	"out_sine":      ease.OutSine,
	"in_out_sine":   ease.InOutSine,
	"in_back":       ease.InBack,
	"out_back":      ease.OutBack,
	"in_out_back":   ease.InOutBack,
	"out_bounce":    ease.OutBounce,
	"out_elastic":   ease.OutElastic,
	"in_out_expo":   ease.InOutExpo,
	"out_expo":      ease.OutExpo,
	"in_expo":       ease.InExpo,
	"in_out_circ":   ease.InOutCirc,
	"out_circ":      ease.OutCirc,
	"in_circ":       ease.InCirc,
	"in_bounce":     ease.InBounce,
	"in_elastic":    ease.InElastic,
	"in_out_bounce": ease.InOutBounce,
}

// ParseEase resolves an easing by name. An empty name is linear.
func ParseEase(name string) (ease.TweenFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("ui: unknown easing %q", name)
	}
	return fn, nil
}

// ScreenConfig describes how one screen animates in and out.
type ScreenConfig struct {
	Type     ScreenType `yaml:"type"`
	Ease     string     `yaml:"ease"`
	Duration float64    `yaml:"duration"`
}

type Config struct {
	Screens []ScreenConfig `yaml:"screens"`
}

func DefaultConfig() Config {
	return Config{Screens: []ScreenConfig{
		{Type: MainMenu, Ease: "out_back", Duration: 0.25},
		{Type: Gameplay, Ease: "linear", Duration: 0},
		{Type: Settings, Ease: "out_back", Duration: 0.25},
		{Type: Pause, Ease: "out_back", Duration: 0.2},
		{Type: Quit, Ease: "out_quad", Duration: 0.15},
	}}
}

// Screen is one UI panel. Showing scales it from 0 to 1; hiding scales it
// from 1 to 0 and deactivates it once the tween completes.
type Screen struct {
	Type ScreenType
	UI   *ebitenui.UI

	easing   ease.TweenFunc
	duration float32

	active bool
	hiding bool
	scale  float32
	tween  *gween.Tween

	canvas *ebiten.Image
}

func NewScreen(cfg ScreenConfig) (*Screen, error) {
	fn, err := ParseEase(cfg.Ease)
	if err != nil {
		return nil, fmt.Errorf("ui: screen %s: %w", cfg.Type, err)
	}
	if cfg.Duration < 0 {
		return nil, fmt.Errorf("ui: screen %s: duration must be >= 0, got %g", cfg.Type, cfg.Duration)
	}
	return &Screen{Type: cfg.Type, easing: fn, duration: float32(cfg.Duration)}, nil
}

func (s *Screen) Active() bool    { return s.active }
func (s *Screen) Hiding() bool    { return s.hiding }
func (s *Screen) Scale() float64  { return float64(s.scale) }
func (s *Screen) Animating() bool { return s.tween != nil }

// Interactive reports whether the screen is fully shown and should take input.
func (s *Screen) Interactive() bool {
	return s.active && !s.hiding && s.tween == nil
}

func (s *Screen) show() {
	s.active = true
	s.hiding = false
	s.animate(0, 1)
}

func (s *Screen) hide() {
	if !s.active {
		return
	}
	s.hiding = true
	s.animate(1, 0)
}

func (s *Screen) animate(from, to float32) {
	if s.duration <= 0 {
		s.tween = nil
		s.scale = to
		s.finish()
		return
	}
	s.scale = from
	s.tween = gween.New(from, to, s.duration, s.easing)
}

func (s *Screen) finish() {
	if s.hiding {
		s.hiding = false
		s.active = false
	}
}

func (s *Screen) update(dt float64) {
	if s.tween == nil {
		return
	}
	v, done := s.tween.Update(float32(dt))
	s.scale = v
	if done {
		s.tween = nil
		s.finish()
	}
}

// draw renders the content to an offscreen canvas and scales it about the
// center of dst.
func (s *Screen) draw(dst *ebiten.Image) {
	if !s.active || s.UI == nil || s.scale <= 0 {
		return
	}
	b := dst.Bounds()
	if s.canvas == nil || s.canvas.Bounds().Dx() != b.Dx() || s.canvas.Bounds().Dy() != b.Dy() {
		s.canvas = ebiten.NewImage(b.Dx(), b.Dy())
	}
	s.canvas.Clear()
	s.UI.Draw(s.canvas)

	w, h := float64(b.Dx()), float64(b.Dy())
	sc := float64(s.scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(sc, sc)
	op.GeoM.Translate(w/2, h/2)
	dst.DrawImage(s.canvas, op)
}
