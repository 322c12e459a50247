package locations

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/ingotown/shared/tilemap"
	"gopkg.in/yaml.v3"
)

// Cell is a tile coordinate.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Offset is a world-unit displacement applied by the camera.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CameraSpec struct {
	Follow bool   `yaml:"follow"`
	Offset Offset `yaml:"offset"`
}

// Layers names the layout resource for each tile layer. Paths are relative
// to the catalogue file.
type Layers struct {
	Solid      tilemap.Source  `yaml:"solid"`
	SingleWay  *tilemap.Source `yaml:"single_way,omitempty"`
	Decoration *tilemap.Source `yaml:"decoration,omitempty"`
}

// NPCSpec describes one roster entry. Behavior is one of "talker",
// "cycler" or "script".
type NPCSpec struct {
	Name     string   `yaml:"name"`
	Cell     Cell     `yaml:"cell"`
	Width    int      `yaml:"width,omitempty"`
	Height   int      `yaml:"height,omitempty"`
	Sprite   *int     `yaml:"sprite,omitempty"`
	Behavior string   `yaml:"behavior"`
	Lines    []string `yaml:"lines,omitempty"`
	Script   string   `yaml:"script,omitempty"`
}

type Location struct {
	ID          string     `yaml:"id"`
	Camera      CameraSpec `yaml:"camera"`
	PlayerStart Cell       `yaml:"player_start"`
	Layers      Layers     `yaml:"layers"`
	NPCs        []NPCSpec  `yaml:"npcs"`
}

// Sources returns the layer sources resolved against dir.
func (l *Location) Sources(dir string) map[tilemap.Layer]tilemap.Source {
	out := map[tilemap.Layer]tilemap.Source{
		tilemap.LayerSolid: resolve(dir, l.Layers.Solid),
	}
	if l.Layers.SingleWay != nil {
		out[tilemap.LayerSingleWay] = resolve(dir, *l.Layers.SingleWay)
	}
	if l.Layers.Decoration != nil {
		out[tilemap.LayerDecoration] = resolve(dir, *l.Layers.Decoration)
	}
	return out
}

func resolve(dir string, src tilemap.Source) tilemap.Source {
	src.Path = path.Join(dir, src.Path)
	return src
}

// Catalogue is the ordered set of locations a world can visit.
type Catalogue struct {
	Locations []Location `yaml:"locations"`

	// Dir is the directory of the catalogue file inside its fs.FS.
	Dir string `yaml:"-"`
}

var (
	ErrNoLocations = errors.New("catalogue has no locations")
	ErrUnknown     = errors.New("unknown location")
)

// Find returns the location with the given id and its catalogue index.
func (c *Catalogue) Find(id string) (*Location, int, error) {
	for i := range c.Locations {
		if c.Locations[i].ID == id {
			return &c.Locations[i], i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: %q", ErrUnknown, id)
}

// Next returns the id after id in catalogue order, wrapping at the end.
func (c *Catalogue) Next(id string) (string, error) {
	_, i, err := c.Find(id)
	if err != nil {
		return "", err
	}
	return c.Locations[(i+1)%len(c.Locations)].ID, nil
}

// Parse decodes and validates a catalogue.
func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("locations: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads the catalogue at name from fsys.
func Load(fsys fs.FS, name string) (*Catalogue, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("locations: load %s: %w", name, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("locations: %s: %w", name, err)
	}
	c.Dir = path.Dir(name)
	return c, nil
}

func (c *Catalogue) Validate() error {
	if len(c.Locations) == 0 {
		return ErrNoLocations
	}
	seen := make(map[string]bool, len(c.Locations))
	for i, loc := range c.Locations {
		if loc.ID == "" {
			return fmt.Errorf("location %d: missing id", i)
		}
		if seen[loc.ID] {
			return fmt.Errorf("location %q: duplicate id", loc.ID)
		}
		seen[loc.ID] = true
		if loc.Layers.Solid.Path == "" {
			return fmt.Errorf("location %q: missing solid layer", loc.ID)
		}
		for _, n := range loc.NPCs {
			if n.Name == "" {
				return fmt.Errorf("location %q: npc without a name", loc.ID)
			}
		}
	}
	return nil
}
