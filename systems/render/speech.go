package render

import (
	"github.com/automoto/ingotown/components"
	cfg "github.com/automoto/ingotown/config"
	"github.com/automoto/ingotown/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for speech rendering (lazy initialized)
var speechFontFace font.Face

type bubble struct {
	text  string
	tween *gween.Tween
	scale float32
}

var bubbles = map[donburi.Entity]*bubble{}

// DrawSpeech draws a bubble above every character that is talking. A new
// line pops in with a short tween; the bubble is clamped to the screen.
func DrawSpeech(e *ecs.ECS, screen *ebiten.Image) {
	cam, ok := camera(e)
	if !ok {
		return
	}
	if speechFontFace == nil {
		speechFontFace = fonts.Speech.Get()
	}

	seen := map[donburi.Entity]bool{}
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		character := components.Character.Get(entry)
		if !character.Speech.Active() || !entry.HasComponent(components.Body) {
			return
		}
		seen[entry.Entity()] = true

		b, ok := bubbles[entry.Entity()]
		if !ok || b.text != character.Speech.Text {
			b = &bubble{
				text:  character.Speech.Text,
				tween: gween.New(0, 1, cfg.Speech.PopInDuration, ease.OutBack),
			}
			bubbles[entry.Entity()] = b
		}
		b.scale, _ = b.tween.Update(1)

		body := components.Body.Get(entry)
		cx, _ := body.Center()
		_, top, _, _ := body.Bounds()
		x, y := project(cam, cx, top)
		drawBubble(screen, character.Speech.Text, x, y, b.scale)
	})

	for id := range bubbles {
		if !seen[id] {
			delete(bubbles, id)
		}
	}
}

func drawBubble(screen *ebiten.Image, line string, anchorX, anchorY float64, scale float32) {
	bounds := text.BoundString(speechFontFace, line) //nolint:staticcheck // TODO: migrate to text/v2
	padding := cfg.Speech.BoxPadding
	boxW := float64(bounds.Dx()) + padding*2
	boxH := float64(bounds.Dy()) + padding*2

	sw := float64(screen.Bounds().Dx())
	boxX := anchorX - boxW/2
	boxY := anchorY - boxH - 2
	if boxX < 0 {
		boxX = 0
	}
	if boxX+boxW > sw {
		boxX = sw - boxW
	}
	if boxY < 0 {
		boxY = 0
	}

	if scale < 1 {
		// Grow from the anchor until the tween settles.
		w := boxW * float64(scale)
		h := boxH * float64(scale)
		vector.FillRect(screen, float32(anchorX-w/2), float32(anchorY-h-2), float32(w), float32(h), cfg.Speech.BoxColor, false)
		return
	}

	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), cfg.Speech.BoxColor, false)
	textX := int(boxX+padding) - bounds.Min.X
	textY := int(boxY+padding) - bounds.Min.Y
	text.Draw(screen, line, speechFontFace, textX, textY, cfg.Speech.TextColor)
}
