package movement

// FixedStep turns variable frame time into whole fixed simulation steps.
type FixedStep struct {
	Step     float64
	MaxSteps int

	acc float64
}

// NewFixedStep creates an accumulator. maxSteps bounds the catch-up work done
// for a single frame; leftover time beyond it is dropped.
func NewFixedStep(step float64, maxSteps int) *FixedStep {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &FixedStep{Step: step, MaxSteps: maxSteps}
}

// Advance adds frame time and returns how many fixed steps to run.
func (f *FixedStep) Advance(frame float64) int {
	if f == nil || f.Step <= 0 || frame <= 0 {
		return 0
	}
	f.acc += frame
	n := 0
	for f.acc >= f.Step && n < f.MaxSteps {
		f.acc -= f.Step
		n++
	}
	if n == f.MaxSteps && f.acc >= f.Step {
		f.acc = 0
	}
	return n
}

// Alpha is the fraction of a step left in the accumulator, for interpolation.
func (f *FixedStep) Alpha() float64 {
	if f == nil || f.Step <= 0 {
		return 0
	}
	return f.acc / f.Step
}
