package parallax

import (
	"fmt"

	"github.com/milk9111/ledgehop/common"
)

// LayerConfig describes one background layer. Depth is the layer's distance
// behind the play plane: 0 moves with the world, larger values lag behind
// the camera more.
type LayerConfig struct {
	Name  string  `yaml:"name"`
	Depth float64 `yaml:"depth"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"`
	// Width and Height size the layer's placeholder band in world units.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Config struct {
	Smoothing float64       `yaml:"smoothing"`
	Layers    []LayerConfig `yaml:"layers"`
}

func (c Config) Validate() error {
	if c.Smoothing < 0 {
		return fmt.Errorf("parallax: smoothing must be >= 0, got %g", c.Smoothing)
	}
	for i, l := range c.Layers {
		if l.Depth < 0 {
			return fmt.Errorf("parallax: layer %d (%s): depth must be >= 0", i, l.Name)
		}
	}
	return nil
}

type Layer struct {
	Config LayerConfig
	X      float64
}

// Scale multiplies the camera's backward x delta. A negative scale makes the
// layer trail the camera, so deeper layers drift across the screen slower.
func (l *Layer) Scale() float64 {
	return -l.Config.Depth
}

// Field scrolls background layers against camera motion.
type Field struct {
	smoothing float64
	layers    []*Layer
	prevCamX  float64
	started   bool
}

func NewField(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Field{smoothing: cfg.Smoothing}
	for _, lc := range cfg.Layers {
		f.layers = append(f.layers, &Layer{Config: lc, X: lc.X})
	}
	return f, nil
}

func (f *Field) Layers() []*Layer {
	if f == nil {
		return nil
	}
	return f.layers
}

// Update shifts each layer by the camera's x delta times the layer scale,
// eased by smoothing*dt.
func (f *Field) Update(camX, dt float64) {
	if f == nil {
		return
	}
	if !f.started {
		f.prevCamX = camX
		f.started = true
		return
	}
	delta := f.prevCamX - camX
	t := common.Clamp01(f.smoothing * dt)
	for _, l := range f.layers {
		target := l.X + delta*l.Scale()
		l.X = common.Lerp(l.X, target, t)
	}
	f.prevCamX = camX
}
