package brief

import (
	"math"

	"github.com/chewxy/math32"
)

// Keypoint is a detected image location.
//
// X and Y are pixel coordinates with the origin at the top-left pixel centre.
// Angle is the dominant orientation in degrees in [0, 360); a negative Angle
// means the detector did not estimate one.
type Keypoint struct {
	X, Y     float32
	Size     float32
	Angle    float32
	Response float32
}

// Center returns the keypoint position rounded half up: ⌊v+0.5⌋.
func (kp Keypoint) Center() (x, y int) {
	return roundHalfUp(kp.X), roundHalfUp(kp.Y)
}

// Oriented reports whether the keypoint carries an orientation.
func (kp Keypoint) Oriented() bool { return kp.Angle >= 0 }

// Rotation returns the unit rotation vector for the keypoint angle.
// Unoriented keypoints get the identity rotation.
func (kp Keypoint) Rotation() Rotation {
	if !kp.Oriented() {
		return IdentityRotation
	}
	rad := kp.Angle * (math32.Pi / 180)
	return Rotation{Cos: math32.Cos(rad), Sin: math32.Sin(rad)}
}

func roundHalfUp(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}
