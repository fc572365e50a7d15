package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/movement"
	"golang.org/x/image/colornames"
)

const (
	debugStroke       = 1
	debugSensorStroke = 0.5
)

// DrawPhysicsDebug outlines the bounding box of every chipmunk shape in
// space, colored by collision layer. The player is drawn in its movement
// mode color.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	v := cameraView(w, screen.Bounds().Dx())
	playerClr := playerDebugColor(w)

	space.EachShape(func(shape *cp.Shape) {
		clr, stroke := shapeDebugStyle(shape, playerClr)
		bb := shape.BB()
		x, y := v.toScreen(bb.L, bb.T)
		vector.StrokeRect(screen, x, y, float32((bb.R-bb.L)*v.ppu), float32((bb.T-bb.B)*v.ppu), stroke, clr, false)
	})
}

// shapeDebugStyle picks the outline color and stroke width for shape.
func shapeDebugStyle(shape *cp.Shape, playerClr color.Color) (color.Color, float32) {
	layer := movement.LayerMask(shape.Filter.Categories)
	clr := tileColor(layer)
	if layer.Has(movement.LayerPlayer) {
		clr = playerClr
	}
	if shape.Sensor() {
		return clr, debugSensorStroke
	}
	return clr, debugStroke
}

func playerDebugColor(w *ecs.World) color.Color {
	player, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return colornames.White
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent)
	if !ok || p.Controller == nil {
		return colornames.White
	}
	if c, ok := modeColors[p.Controller.Mode()]; ok {
		return c
	}
	return colornames.White
}

// DrawPlayerStateDebug prints the player's movement state in the corner.
func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent)
	if !ok {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent)
	if !ok || p.Controller == nil {
		return
	}
	st := p.Controller.State()
	text := fmt.Sprintf("Mode: %s\nGrounded: %v\nWall: %v\nJumps: %d\nCoyote: %v\nVel: %.2f, %.2f\nDeaths: %d",
		st.Mode, st.Grounded, st.TouchingWall, st.JumpCount, st.CanCoyoteJump, st.Velocity.X, st.Velocity.Y, p.Deaths)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}
