package components

import (
	"github.com/automoto/ingotown/shared/locations"
	"github.com/automoto/ingotown/shared/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Tiles    *tilemap.Map
	Location *locations.Location
	Frame    int
}

var Level = donburi.NewComponentType[LevelData]()
