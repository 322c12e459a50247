// Package animations picks and advances sprite-sheet columns for characters.
package animations

import (
	"math"

	"github.com/automoto/ingotown/shared/gamemath"
)

// Pose is what a character is visibly doing this frame.
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalk
	PoseAir
)

// Def is a run of sheet columns played at Speed ticks per column.
type Def struct {
	First int
	Last  int
	Speed float32
}

// Columns of the character sheet used by each pose.
var Poses = map[Pose]Def{
	PoseIdle: {First: 0, Last: 0, Speed: 8},
	PoseWalk: {First: 1, Last: 3, Speed: 6},
	PoseAir:  {First: 4, Last: 4, Speed: 8},
}

// SheetColumns is the number of columns each sprite row carries.
const SheetColumns = 5

// PoseOf derives a pose from a body. Anything that moves at least one
// unit per frame counts as walking.
func PoseOf(b *gamemath.Body) Pose {
	switch {
	case !b.Grounded && b.VY != 0:
		return PoseAir
	case math.Abs(b.VX) >= 0.5:
		return PoseWalk
	}
	return PoseIdle
}

type Animation struct {
	Def
	frameCounter float32
	frame        int
}

// Update advances the animation by one tick, looping back to First.
func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.Speed
		a.frame++
		if a.frame > a.Last {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func NewAnimation(def Def) *Animation {
	return &Animation{
		Def:          def,
		frameCounter: def.Speed,
		frame:        def.First,
	}
}

// Player tracks one character's pose and restarts the animation when the
// pose changes.
type Player struct {
	pose Pose
	anim *Animation
}

// Step updates the pose from b and returns the sheet column to draw.
func (p *Player) Step(b *gamemath.Body) int {
	pose := PoseOf(b)
	if p.anim == nil || pose != p.pose {
		p.pose = pose
		p.anim = NewAnimation(Poses[pose])
		return p.anim.Frame()
	}
	p.anim.Update()
	return p.anim.Frame()
}
