package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float64) float64 {
	return Clamp(t, 0, 1)
}

// SmoothDamp moves current toward target with a critically damped spring
// that reaches it in roughly smoothTime seconds. velocity carries state
// between calls. maxSpeed <= 0 means unlimited. The result never overshoots
// target.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	original := target
	if maxSpeed > 0 {
		maxChange := maxSpeed * smoothTime
		change = Clamp(change, -maxChange, maxChange)
	}
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	if (original-current > 0) == (out > original) {
		out = original
		*velocity = 0
	}
	return out
}
