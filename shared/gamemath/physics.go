package gamemath

import "math"

// Facing is the horizontal direction a character looks in.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Params are the tunable world constants used by Body.Step.
type Params struct {
	Gravity      float64 // added to VY every frame
	MaxSpeed     float64 // |VX| limit
	DeadZone     float64 // |VX| below this snaps to 0
	Deceleration float64 // VX is divided by this every frame
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyDeadZone snaps speeds strictly inside (-deadZone, deadZone) to zero.
func ApplyDeadZone(speed, deadZone float64) float64 {
	if speed > -deadZone && speed < deadZone {
		return 0
	}
	return speed
}

// ApplyDrag divides speed by the deceleration factor. Factors <= 1 leave
// the speed untouched.
func ApplyDrag(speed, factor float64) float64 {
	if factor <= 1 {
		return speed
	}
	return speed / factor
}

// HorizontalStep is the whole-unit horizontal displacement for a frame.
// Halves round to even.
func HorizontalStep(vx float64) float64 {
	return math.RoundToEven(vx)
}
