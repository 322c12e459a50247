package components

import "github.com/yohamta/donburi"

// SpeechData is the line a character is saying and how many frames it stays up.
type SpeechData struct {
	Text  string
	Timer int
}

// Active reports whether there is a line on screen.
func (s *SpeechData) Active() bool {
	return s.Text != "" && s.Timer > 0
}

type CharacterData struct {
	Name   string
	Sprite int
	Speech SpeechData
}

var Character = donburi.NewComponentType[CharacterData]()
