package common

import "github.com/jakecoffman/cp"

const (
	// Gravity is the vertical world acceleration in units/s². World y
	// points up.
	Gravity = -9.81
	// FixedDelta is the physics step in seconds.
	FixedDelta = 0.02
	// FrameRate is the target number of frames per second.
	FrameRate = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpClamped is Lerp with t clamped to [0, 1].
func LerpClamped(a, b, t float64) float64 {
	return Lerp(a, b, Clamp01(t))
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// RotatePoint rotates p by angle radians around the origin and moves it to
// center.
func RotatePoint(p cp.Vector, angle float64, center cp.Vector) cp.Vector {
	return center.Add(p.Rotate(cp.ForAngle(angle)))
}
