package common

import (
	"math"
	"testing"
)

func TestSmoothDampConvergesWithoutOvershoot(t *testing.T) {
	cases := []struct {
		name     string
		from, to float64
		maxSpeed float64
	}{
		{"forward", 0, 10, 0},
		{"backward", 5, -3, 0},
		{"speed_capped", 0, 100, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos, vel := tc.from, 0.0
			dir := math.Copysign(1, tc.to-tc.from)
			for i := 0; i < 600; i++ {
				next := SmoothDamp(pos, tc.to, &vel, 0.3, tc.maxSpeed, 1.0/60)
				if (next-tc.to)*dir > 1e-9 {
					t.Fatalf("overshot target: %g", next)
				}
				if (next-pos)*dir < -1e-9 {
					t.Fatalf("moved away from target: %g -> %g", pos, next)
				}
				if tc.maxSpeed > 0 && math.Abs(next-pos) > 1.1*tc.maxSpeed/60 {
					t.Fatalf("exceeded max speed: %g", math.Abs(next-pos)*60)
				}
				pos = next
			}
			if math.Abs(pos-tc.to) > 1e-3 {
				t.Fatalf("did not converge: %g", pos)
			}
		})
	}
}

func TestLerpClamp(t *testing.T) {
	if Lerp(2, 4, 0.5) != 3 {
		t.Fatalf("unexpected Lerp")
	}
	if Clamp01(2) != 1 || Clamp01(-1) != 0 {
		t.Fatalf("unexpected Clamp01")
	}
}
