package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/fonts"
	"github.com/automoto/ingotown/systems"
	"github.com/automoto/ingotown/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every body and the interaction probe, and prints the
// player's kinematic state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	cam, ok := camera(e)
	if !ok {
		return
	}

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		bx, by, bw, bh := body.Bounds()
		x, y := project(cam, bx, by)
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if entry.HasComponent(tags.Player) {
			c = color.RGBA{0, 0, 255, 255} // Blue
			if body.Grounded {
				c = cfg.Green
			}
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(bw), float32(bh), 1, c, false)
	})

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	probe := systems.InteractionProbe(body)
	px, py := project(cam, probe.X, probe.Y)
	vector.StrokeRect(screen, float32(px), float32(py), float32(probe.W), float32(probe.H), 1, cfg.Yellow, false)

	location := ""
	frame := 0
	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		frame = level.Frame
		if level.Location != nil {
			location = level.Location.ID
		}
	}
	lines := []string{
		fmt.Sprintf("%s f%d %.0ffps", location, frame, ebiten.ActualFPS()),
		fmt.Sprintf("x%.1f y%.1f", body.X, body.Y),
		fmt.Sprintf("vx%.2f vy%.2f", body.VX, body.VY),
		fmt.Sprintf("%s %v", body.Facing, groundLabel(body.Grounded, body.GroundType.String())),
	}
	face := fonts.Debug.Get()
	for i, l := range lines {
		text.Draw(screen, l, face, 2, 8+i*7, cfg.White)
	}
}

func groundLabel(grounded bool, ground string) string {
	if !grounded {
		return "air"
	}
	return "on " + ground
}
