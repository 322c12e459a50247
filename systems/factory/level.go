package factory

import (
	"github.com/automoto/ingotown/archetypes"
	"github.com/automoto/ingotown/components"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{})
	return level
}
