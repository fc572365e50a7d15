package movement

// Events dispatches controller notifications synchronously, in registration
// order, from inside Controller.Step.
type Events struct {
	jumped   []func()
	grounded []func(grounded bool)
	dashed   []func()
}

// OnJumped registers fn for every successful jump variant.
func (e *Events) OnJumped(fn func()) {
	if e == nil || fn == nil {
		return
	}
	e.jumped = append(e.jumped, fn)
}

// OnGroundedChanged registers fn for landing (true) and lift-off (false).
func (e *Events) OnGroundedChanged(fn func(grounded bool)) {
	if e == nil || fn == nil {
		return
	}
	e.grounded = append(e.grounded, fn)
}

// OnDashStarted registers fn for every accepted dash.
func (e *Events) OnDashStarted(fn func()) {
	if e == nil || fn == nil {
		return
	}
	e.dashed = append(e.dashed, fn)
}

func (e *Events) fireJumped() {
	for _, fn := range e.jumped {
		fn()
	}
}

func (e *Events) fireGroundedChanged(grounded bool) {
	for _, fn := range e.grounded {
		fn(grounded)
	}
}

func (e *Events) fireDashStarted() {
	for _, fn := range e.dashed {
		fn()
	}
}
