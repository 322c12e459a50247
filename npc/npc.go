// Package npc holds the behaviours a non-player character runs when the
// player interacts with it.
package npc

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/ingotown/shared/gamemath"
	"github.com/automoto/ingotown/shared/locations"
)

// InteractContext is what a behaviour can see about the interaction.
type InteractContext struct {
	Name     string          // the NPC's own name
	Count    int             // interactions before this one
	Facing   gamemath.Facing // player facing
	Location string
	Frame    int
}

// Interactor produces the line an NPC says. ok is false when the NPC has
// nothing to say, which leaves its speech untouched.
type Interactor interface {
	Interact(ctx InteractContext) (line string, ok bool)
}

// Talker always says the same thing.
type Talker struct {
	Line string
}

func (t Talker) Interact(InteractContext) (string, bool) {
	return t.Line, t.Line != ""
}

// Cycler walks through Lines one interaction at a time, wrapping at the end.
type Cycler struct {
	Lines []string
}

func (c Cycler) Interact(ctx InteractContext) (string, bool) {
	if len(c.Lines) == 0 {
		return "", false
	}
	i := ctx.Count % len(c.Lines)
	if i < 0 {
		i += len(c.Lines)
	}
	return c.Lines[i], true
}

const (
	BehaviorTalker = "talker"
	BehaviorCycler = "cycler"
	BehaviorScript = "script"
)

// Build creates the behaviour described by spec. Script paths are read
// from fsys relative to dir.
func Build(spec locations.NPCSpec, fsys fs.FS, dir string) (Interactor, error) {
	switch spec.Behavior {
	case "", BehaviorTalker:
		if len(spec.Lines) == 0 {
			return nil, fmt.Errorf("npc %s: talker needs a line", spec.Name)
		}
		return Talker{Line: spec.Lines[0]}, nil
	case BehaviorCycler:
		if len(spec.Lines) == 0 {
			return nil, fmt.Errorf("npc %s: cycler needs lines", spec.Name)
		}
		return Cycler{Lines: append([]string(nil), spec.Lines...)}, nil
	case BehaviorScript:
		if spec.Script == "" {
			return nil, fmt.Errorf("npc %s: script behavior without a script", spec.Name)
		}
		name := path.Join(dir, spec.Script)
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("npc %s: %w", spec.Name, err)
		}
		s, err := NewScript(name, src)
		if err != nil {
			return nil, fmt.Errorf("npc %s: %w", spec.Name, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("npc %s: unknown behavior %q", spec.Name, spec.Behavior)
	}
}
