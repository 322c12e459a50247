package npc

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptTimeout bounds a single interaction script run.
var ScriptTimeout = 50 * time.Millisecond

// Script runs a tengo program on every interaction. The program sees
// name, count, facing ("left"/"right") and location, and assigns the line
// to say to line. Leaving line empty says nothing.
type Script struct {
	Path     string
	compiled *tengo.Compiled
}

func NewScript(path string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("name", "")
	_ = script.Add("count", 0)
	_ = script.Add("facing", "")
	_ = script.Add("location", "")
	_ = script.Add("frame", 0)
	_ = script.Add("line", "")
	script.SetImports(stdlib.GetModuleMap("fmt", "math", "rand", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return &Script{Path: path, compiled: compiled}, nil
}

func (s *Script) Interact(ctx InteractContext) (string, bool) {
	line, err := s.run(ctx)
	if err != nil {
		log.Printf("npc script %s: %v", s.Path, err)
		return "", false
	}
	return line, line != ""
}

func (s *Script) run(ictx InteractContext) (string, error) {
	c := s.compiled.Clone()
	vars := map[string]interface{}{
		"name":     ictx.Name,
		"count":    ictx.Count,
		"facing":   ictx.Facing.String(),
		"location": ictx.Location,
		"frame":    ictx.Frame,
		"line":     "",
	}
	for k, v := range vars {
		if err := c.Set(k, v); err != nil {
			return "", err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), ScriptTimeout)
	defer cancel()
	if err := c.RunContext(ctx); err != nil {
		return "", err
	}

	v := c.Get("line")
	if v.IsUndefined() {
		return "", nil
	}
	if _, ok := v.Value().(string); !ok {
		return "", fmt.Errorf("line is %s, not a string", v.ValueType())
	}
	return v.String(), nil
}
