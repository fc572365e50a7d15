package movement

import "testing"

func TestIntentBufferTakesOnePressPerStep(t *testing.T) {
	var b IntentBuffer
	b.PressJump()
	b.PressJump()
	b.PressDash()
	b.SetAxis(-2, 0.5)

	f := b.Take()
	if !f.JumpPressed || !f.DashPressed {
		t.Fatalf("expected both presses, got %+v", f)
	}
	if f.Axis != (Vec2{X: -1, Y: 0.5}) {
		t.Fatalf("expected clamped axis, got %+v", f.Axis)
	}
	if jump, dash := b.Pending(); jump != 1 || dash != 0 {
		t.Fatalf("expected 1 pending jump, got %d/%d", jump, dash)
	}

	f = b.Take()
	if !f.JumpPressed || f.DashPressed {
		t.Fatalf("expected carried jump press only, got %+v", f)
	}
	f = b.Take()
	if f.JumpPressed {
		t.Fatalf("press consumed twice")
	}
}

func TestIntentBufferClear(t *testing.T) {
	var b IntentBuffer
	b.PressJump()
	b.PressDash()
	b.SetJumpHeld(true)
	b.Clear()
	f := b.Take()
	if f.JumpPressed || f.DashPressed {
		t.Fatalf("expected no presses after Clear, got %+v", f)
	}
	if !f.JumpHeld {
		t.Fatalf("Clear should keep the held level")
	}
}

func TestFixedStep(t *testing.T) {
	cases := []struct {
		name   string
		step   float64
		max    int
		frames []float64
		want   []int
	}{
		{"exact", 1.0 / 64, 4, []float64{1.0 / 32, 1.0 / 64}, []int{2, 1}},
		{"accumulates", 1.0 / 64, 4, []float64{1.0 / 128, 1.0 / 128, 1.0 / 128}, []int{0, 1, 0}},
		{"clamped", 1.0 / 64, 3, []float64{1, 1.0 / 64}, []int{3, 1}},
		{"ignores_negative", 1.0 / 64, 3, []float64{-1}, []int{0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := NewFixedStep(tc.step, tc.max)
			for i, frame := range tc.frames {
				if got := fs.Advance(frame); got != tc.want[i] {
					t.Fatalf("frame %d: expected %d steps, got %d", i, tc.want[i], got)
				}
			}
		})
	}
}
