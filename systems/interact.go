package systems

import (
	"math"

	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/npc"
	"github.com/automoto/ingotown/shared/gamemath"
	"github.com/automoto/ingotown/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned box in world units.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func bodyRect(b *gamemath.Body) Rect {
	x, y, w, h := b.Bounds()
	return Rect{X: x, Y: y, W: w, H: h}
}

// InteractionProbe is the window in front of a body, bottom-aligned with its feet.
func InteractionProbe(b *gamemath.Body) Rect {
	r := bodyRect(b)
	probe := Rect{W: cfg.Interaction.Width, H: cfg.Interaction.Height}
	if b.Facing == gamemath.FacingLeft {
		probe.X = r.X - probe.W
	} else {
		probe.X = r.X + r.W
	}
	probe.Y = r.Y + r.H - probe.H
	return probe
}

// UpdateInteraction runs the nearest NPC's behaviour when Interact is
// pressed. It reads positions as the previous frame left them.
func UpdateInteraction(w donburi.World) {
	input := getInput(w)
	if input == nil || !GetAction(input, cfg.ActionInteract).JustPressed {
		return
	}
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	var location string
	var frame int
	if levelEntry, ok := components.Level.First(w); ok {
		level := components.Level.Get(levelEntry)
		frame = level.Frame
		if level.Location != nil {
			location = level.Location.ID
		}
	}

	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		body := components.Body.Get(e)

		target := FindInteractTarget(space, body)
		if target == nil {
			player.InteractTarget = donburi.Null
			return
		}
		player.InteractTarget = target.Entity()
		player.Interactions++
		interact(target, npc.InteractContext{
			Facing:   body.Facing,
			Location: location,
			Frame:    frame,
		})
	})
}

// FindInteractTarget returns the NPC nearest to body whose footprint
// overlaps the interaction probe. Equal distances go to the lower entity id.
func FindInteractTarget(space *resolv.Space, body *gamemath.Body) *donburi.Entry {
	probe := InteractionProbe(body)

	// Inflated by a unit so boundary-touching cells are still candidates.
	obj := resolv.NewObject(probe.X-1, probe.Y-1, probe.W+2, probe.H+2, tags.ResolvProbe)
	space.Add(obj)
	check := obj.Check(0, 0, tags.ResolvNPC)
	space.Remove(obj)
	if check == nil {
		return nil
	}

	cx, cy := bodyRect(body).Center()
	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, candidate := range check.ObjectsByTags(tags.ResolvNPC) {
		entry, ok := candidate.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() || !entry.HasComponent(components.NPC) {
			continue
		}
		r := bodyRect(components.Body.Get(entry))
		if !r.Overlaps(probe) {
			continue
		}
		nx, ny := r.Center()
		d := math.Hypot(nx-cx, ny-cy)
		if d < bestDist || (d == bestDist && best != nil && entry.Entity().Id() < best.Entity().Id()) {
			best, bestDist = entry, d
		}
	}
	return best
}

func interact(target *donburi.Entry, ctx npc.InteractContext) {
	data := components.NPC.Get(target)
	character := components.Character.Get(target)
	ctx.Name = character.Name
	ctx.Count = data.Count
	data.Count++
	if data.Behavior == nil {
		return
	}
	line, ok := data.Behavior.Interact(ctx)
	if !ok {
		return
	}
	character.Speech = components.SpeechData{
		Text:  line,
		Timer: cfg.Speech.DisplayDuration,
	}
}
