package system

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
	"golang.org/x/image/colornames"
)

func TestShapeDebugStyleUsesLayerColors(t *testing.T) {
	space := physics.NewSpace()
	space.SetStatics([]physics.Rect{
		{X: 0, Y: 0, Width: 10, Height: 1, Layer: movement.LayerGround | movement.LayerWall},
		{X: 2, Y: 1, Width: 1, Height: 1, Layer: movement.LayerGround},
		{X: 9, Y: 1, Width: 1, Height: 5, Layer: movement.LayerWall},
		{X: 4, Y: 1, Width: 1, Height: 1, Layer: movement.LayerHazard},
	})
	space.SpawnPlayer(movement.Vec2{X: 6, Y: 2}, movement.Vec2{X: 0.8, Y: 1.6})

	playerClr := colornames.Magenta
	cases := map[movement.LayerMask]struct {
		clr    color.Color
		stroke float32
	}{
		movement.LayerGround | movement.LayerWall: {solidColor, debugStroke},
		movement.LayerGround:                      {groundColor, debugStroke},
		movement.LayerWall:                        {wallColor, debugStroke},
		movement.LayerHazard:                      {colornames.Red, debugSensorStroke},
		movement.LayerPlayer:                      {playerClr, debugStroke},
	}

	seen := 0
	space.CP().EachShape(func(shape *cp.Shape) {
		layer := movement.LayerMask(shape.Filter.Categories)
		want, ok := cases[layer]
		if !ok {
			t.Fatalf("unexpected shape layer %v", layer)
		}
		clr, stroke := shapeDebugStyle(shape, playerClr)
		if clr != want.clr || stroke != want.stroke {
			t.Fatalf("layer %v: expected %v/%v, got %v/%v", layer, want.clr, want.stroke, clr, stroke)
		}
		seen++
	})
	if seen != len(cases) {
		t.Fatalf("expected %d shapes, saw %d", len(cases), seen)
	}
}
