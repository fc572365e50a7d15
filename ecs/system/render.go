package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ledgehop/common"
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
	"golang.org/x/image/colornames"
)

// parallaxPostSpacing is the world distance between the darker posts drawn on
// each background band so its motion reads on screen.
const parallaxPostSpacing = 6.0

var (
	solidColor  = color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}
	groundColor = color.RGBA{R: 0x6c, G: 0x9c, B: 0xff, A: 0xff}
	wallColor   = color.RGBA{R: 0x28, G: 0x50, B: 0xb0, A: 0xff}
)

var modeColors = map[movement.Mode]color.Color{
	movement.ModeIdle:        colornames.White,
	movement.ModeAirborne:    colornames.Lightskyblue,
	movement.ModeWallSliding: colornames.Orange,
	movement.ModeDashing:     colornames.Magenta,
}

// view maps world units (Y up) to screen pixels.
type view struct {
	minX, maxY float64
	ppu        float64
}

func (v view) toScreen(x, y float64) (float32, float32) {
	return float32((x - v.minX) * v.ppu), float32((v.maxY - y) * v.ppu)
}

func (v view) fillRect(dst *ebiten.Image, r physics.Rect, clr color.Color) {
	x, y := v.toScreen(r.X, r.Y+r.Height)
	vector.FillRect(dst, x, y, float32(r.Width*v.ppu), float32(r.Height*v.ppu), clr, false)
}

func cameraView(w *ecs.World, screenW int) view {
	v := view{ppu: common.PixelsPerUnit}
	camEntity, ok := ecs.First(w, component.CameraComponent)
	if !ok {
		return v
	}
	if camComp, ok := ecs.Get(w, camEntity, component.CameraComponent); ok && camComp.Follower != nil {
		b := camComp.Follower.View()
		if b.MaxX > b.MinX {
			v.ppu = float64(screenW) / (b.MaxX - b.MinX)
		}
		v.minX, v.maxY = b.MinX, b.MaxY
	}
	return v
}

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw renders background layers, level tiles, goals and the player.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	v := cameraView(w, screen.Bounds().Dx())

	ecs.ForEach(w, component.ParallaxComponent, func(e ecs.Entity, p *component.Parallax) {
		for _, l := range p.Field.Layers() {
			drawParallaxLayer(screen, v, l.X, l.Config.Y, l.Config.Width, l.Config.Height, parseHexColor(l.Config.Color))
		}
	})

	ecs.ForEach(w, component.StaticTileComponent, func(e ecs.Entity, t *component.StaticTile) {
		v.fillRect(screen, t.Rect, tileColor(t.Rect.Layer))
	})

	ecs.ForEach(w, component.GoalComponent, func(e ecs.Entity, g *component.Goal) {
		clr := color.Color(colornames.Limegreen)
		if g.Reached {
			clr = colornames.Gold
		}
		v.fillRect(screen, g.Bounds, clr)
	})

	ecs.ForEach2(w, component.PlayerComponent, component.TransformComponent, func(e ecs.Entity, p *component.Player, t *component.Transform) {
		clr := color.Color(colornames.White)
		if p.Controller != nil {
			if c, ok := modeColors[p.Controller.Mode()]; ok {
				clr = c
			}
		}
		box := physics.RectAround(movement.Vec2{X: t.X, Y: t.Y}, movement.Vec2{X: p.Width, Y: p.Height})
		v.fillRect(screen, box, clr)
		if p.Controller != nil {
			// facing marker
			facing := p.Controller.State().Facing
			eye := physics.Rect{X: t.X + facing*p.Width/4 - 0.08, Y: t.Y + p.Height/4, Width: 0.16, Height: 0.16}
			v.fillRect(screen, eye, colornames.Black)
		}
	})
}

func drawParallaxLayer(dst *ebiten.Image, v view, centerX, bottom, width, height float64, clr color.RGBA) {
	if width <= 0 || height <= 0 {
		return
	}
	band := physics.Rect{X: centerX - width/2, Y: bottom, Width: width, Height: height}
	v.fillRect(dst, band, clr)

	post := color.RGBA{R: clr.R / 2, G: clr.G / 2, B: clr.B / 2, A: clr.A}
	start := math.Ceil(band.X/parallaxPostSpacing) * parallaxPostSpacing
	for x := start; x < band.X+band.Width; x += parallaxPostSpacing {
		v.fillRect(dst, physics.Rect{X: x, Y: bottom, Width: 0.5, Height: height}, post)
	}
}

func tileColor(layer movement.LayerMask) color.Color {
	switch {
	case layer.Has(movement.LayerHazard):
		return colornames.Red
	case layer.Has(movement.LayerGround) && layer.Has(movement.LayerWall):
		return solidColor
	case layer.Has(movement.LayerGround):
		return groundColor
	default:
		return wallColor
	}
}

// parseHexColor parses a color in the form #rrggbb. Returns opaque blue if parse fails.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0x00, 0x00, 0xff
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
