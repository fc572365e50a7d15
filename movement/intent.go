package movement

// IntentBuffer collects input between fixed steps. Writers sample it at
// render rate; the controller takes one Frame per fixed step.
type IntentBuffer struct {
	axis        Vec2
	jumpHeld    bool
	jumpPresses int
	dashPresses int
}

// Frame is the input consumed by a single fixed step.
type Frame struct {
	Axis        Vec2
	JumpHeld    bool
	JumpPressed bool
	DashPressed bool
}

// SetAxis stores the latest directional input, clamped to [-1, 1].
func (b *IntentBuffer) SetAxis(x, y float64) {
	if b == nil {
		return
	}
	b.axis = Vec2{X: clampAxis(x), Y: clampAxis(y)}
}

// SetJumpHeld stores the jump button level.
func (b *IntentBuffer) SetJumpHeld(held bool) {
	if b == nil {
		return
	}
	b.jumpHeld = held
}

// PressJump registers one jump press.
func (b *IntentBuffer) PressJump() {
	if b == nil {
		return
	}
	b.jumpPresses++
}

// PressDash registers one dash press.
func (b *IntentBuffer) PressDash() {
	if b == nil {
		return
	}
	b.dashPresses++
}

// Pending reports the presses not yet consumed by a fixed step.
func (b *IntentBuffer) Pending() (jump, dash int) {
	if b == nil {
		return 0, 0
	}
	return b.jumpPresses, b.dashPresses
}

// Take consumes at most one jump press and one dash press. Extra presses stay
// queued for later steps.
func (b *IntentBuffer) Take() Frame {
	if b == nil {
		return Frame{}
	}
	f := Frame{Axis: b.axis, JumpHeld: b.jumpHeld}
	if b.jumpPresses > 0 {
		b.jumpPresses--
		f.JumpPressed = true
	}
	if b.dashPresses > 0 {
		b.dashPresses--
		f.DashPressed = true
	}
	return f
}

// Clear drops every queued press, e.g. when gameplay is paused.
func (b *IntentBuffer) Clear() {
	if b == nil {
		return
	}
	b.jumpPresses = 0
	b.dashPresses = 0
}
