package main

import (
	"fmt"

	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/systems"
	"github.com/automoto/ingotown/world"
	"github.com/yohamta/donburi"
	"gopkg.in/yaml.v3"
)

// Step holds a set of actions down for a number of frames.
type Step struct {
	Frames int      `yaml:"frames"`
	Hold   []string `yaml:"hold"`

	held [cfg.ActionCount]bool
}

// Plan is a scripted input sequence, optionally naming where to start.
type Plan struct {
	Location string `yaml:"location"`
	Steps    []Step `yaml:"steps"`
}

// ParsePlan decodes a YAML plan and resolves its action names.
func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	for i := range p.Steps {
		s := &p.Steps[i]
		if s.Frames <= 0 {
			return nil, fmt.Errorf("step %d: frames must be positive, got %d", i, s.Frames)
		}
		for _, name := range s.Hold {
			id, ok := cfg.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("step %d: unknown action %q", i, name)
			}
			s.held[id] = true
		}
	}
	return &p, nil
}

// Frames is the total length of the plan.
func (p *Plan) Frames() int {
	n := 0
	for _, s := range p.Steps {
		n += s.Frames
	}
	return n
}

// Spoken is one line said during a run.
type Spoken struct {
	Frame int
	Name  string
	Text  string
}

// Report is the state of the world once a plan has run.
type Report struct {
	Location string
	Frame    int
	X, Y     float64
	Grounded bool
	Lines    []Spoken
}

// Run plays the plan against w, which must already have a location loaded.
func Run(w *world.World, p *Plan) Report {
	var r Report
	timers := map[donburi.Entity]int{}
	for _, s := range p.Steps {
		for i := 0; i < s.Frames; i++ {
			systems.PushInput(w.Input(), s.held)
			w.Update()
			r.Lines = append(r.Lines, newLines(w, timers)...)
		}
	}

	r.Frame = w.Frame()
	if loc := w.Location(); loc != nil {
		r.Location = loc.ID
	}
	if b := w.PlayerBody(); b != nil {
		r.X, r.Y, r.Grounded = b.X, b.Y, b.Grounded
	}
	return r
}

// newLines reports speech whose timer was restarted this frame.
func newLines(w *world.World, timers map[donburi.Entity]int) []Spoken {
	var out []Spoken
	components.Character.Each(w.Donburi(), func(e *donburi.Entry) {
		c := components.Character.Get(e)
		last := timers[e.Entity()]
		timers[e.Entity()] = c.Speech.Timer
		if c.Speech.Active() && c.Speech.Timer > last {
			out = append(out, Spoken{Frame: w.Frame(), Name: c.Name, Text: c.Speech.Text})
		}
	})
	return out
}
