package systems

import (
	"github.com/automoto/ingotown/components"
	"github.com/yohamta/donburi"
)

// UpdateSpeech counts down every visible line and clears it when it expires.
func UpdateSpeech(w donburi.World) {
	components.Character.Each(w, func(e *donburi.Entry) {
		speech := &components.Character.Get(e).Speech
		if speech.Timer <= 0 {
			return
		}
		speech.Timer--
		if speech.Timer == 0 {
			speech.Text = ""
		}
	})
}
