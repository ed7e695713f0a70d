package sim

import (
	"math"

	"github.com/robotalks/fcu.go/pkg/link"
)

// Angle is an angle in radians, normalized to [-Pi, Pi].
type Angle float64

// AngleFromDegrees creates Angle from degrees.
func AngleFromDegrees(d float64) Angle {
	return Angle(normalizeRadians(d * math.Pi / 180.0))
}

// AngleFromRadians creates Angle from radians.
func AngleFromRadians(r float64) Angle {
	return Angle(normalizeRadians(r))
}

// AddRadians adds radians to current angle.
func (a Angle) AddRadians(r float64) Angle {
	return Angle(normalizeRadians(float64(a) + r))
}

// Radians gets angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees gets angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

func normalizeRadians(r float64) float64 {
	if r >= 2*math.Pi || r <= -2*math.Pi {
		r = math.Remainder(r, 2*math.Pi)
	}
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r < -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// Euler is an attitude as roll, pitch and yaw.
type Euler struct {
	Roll, Pitch, Yaw Angle
}

// Quaternion converts to a unit quaternion (ZYX order).
func (e Euler) Quaternion() link.Quaternion {
	cr, sr := math.Cos(e.Roll.Radians()/2), math.Sin(e.Roll.Radians()/2)
	cp, sp := math.Cos(e.Pitch.Radians()/2), math.Sin(e.Pitch.Radians()/2)
	cy, sy := math.Cos(e.Yaw.Radians()/2), math.Sin(e.Yaw.Radians()/2)
	return link.Quaternion{
		W: float32(cr*cp*cy + sr*sp*sy),
		X: float32(sr*cp*cy - cr*sp*sy),
		Y: float32(cr*sp*cy + sr*cp*sy),
		Z: float32(cr*cp*sy - sr*sp*cy),
	}
}

// EulerFromQuaternion converts a unit quaternion to Euler angles.
func EulerFromQuaternion(q link.Quaternion) Euler {
	w, x, y, z := float64(q.W), float64(q.X), float64(q.Y), float64(q.Z)
	sinp := 2 * (w*y - z*x)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	return Euler{
		Roll:  AngleFromRadians(math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))),
		Pitch: AngleFromRadians(math.Asin(sinp)),
		Yaw:   AngleFromRadians(math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))),
	}
}

// Gravity returns the gravity vector measured by an accelerometer at this
// attitude, in m/s^2 with Z down.
func (e Euler) Gravity() link.Vector {
	const g = 9.80665
	r, p := e.Roll.Radians(), e.Pitch.Radians()
	return link.Vector{
		X: float32(g * math.Sin(p)),
		Y: float32(-g * math.Sin(r) * math.Cos(p)),
		Z: float32(-g * math.Cos(r) * math.Cos(p)),
	}
}
