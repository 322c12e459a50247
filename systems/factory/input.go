package factory

import (
	"github.com/automoto/ingotown/archetypes"
	"github.com/automoto/ingotown/components"
	"github.com/yohamta/donburi"
)

func CreateInput(w donburi.World) *donburi.Entry {
	input := archetypes.Input.Spawn(w)
	components.Input.SetValue(input, components.InputData{})
	return input
}
