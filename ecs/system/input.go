package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
)

const stickDeadzone = 0.2

// InputSystem samples devices once per frame, stores the sample on every
// Input component and queues presses on player controllers so fixed steps
// consume each press exactly once.
type InputSystem struct {
	Sample func() component.Input
}

func NewInputSystem() *InputSystem {
	return &InputSystem{Sample: SampleDevices}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.Sample == nil {
		return
	}
	in := i.Sample()

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		*input = in
		player, ok := ecs.Get(w, e, component.PlayerComponent)
		if !ok || player.Controller == nil {
			return
		}
		intents := player.Controller.Intents()
		intents.SetAxis(in.MoveX, in.MoveY)
		intents.SetJumpHeld(in.Jump)
		if in.JumpPressed {
			intents.PressJump()
		}
		if in.DashPressed {
			intents.PressDash()
		}
	})
}

// SampleDevices reads the keyboard and the first standard gamepad.
func SampleDevices() component.Input {
	var in component.Input

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	if left {
		in.MoveX -= 1
	}
	if right {
		in.MoveX += 1
	}
	if up {
		in.MoveY += 1
	}
	if down {
		in.MoveY -= 1
	}

	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.DashPressed = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyShiftRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyX)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(lx) > stickDeadzone {
			in.MoveX = lx
		}
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(ly) > stickDeadzone {
			in.MoveY = -ly
		}
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.DashPressed = in.DashPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}
	return in
}

// BackPressed reports the UI back button: Esc or the gamepad's start button.
func BackPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}
