package tilemap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Source names the resource a layer is read from. Layer is only used for
// .tmx files, where it selects the tile layer by name.
type Source struct {
	Path  string `yaml:"path"`
	Layer string `yaml:"layer,omitempty"`
}

// LoadLayer reads a tile table from fsys, choosing the parser by extension.
func LoadLayer(fsys fs.FS, src Source) ([][]int, error) {
	switch strings.ToLower(path.Ext(src.Path)) {
	case ".csv":
		return LoadCSV(fsys, src.Path)
	case ".tmx":
		return LoadTMX(fsys, src.Path, src.Layer)
	}
	return nil, fmt.Errorf("load layer %s: unsupported layout format", src.Path)
}

// LoadCSV parses a rectangular table of integer tile ids, one row per line.
func LoadCSV(fsys fs.FS, name string) ([][]int, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("load csv %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	var rows [][]int
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load csv %s: %w", name, err)
		}

		row := make([]int, len(record))
		for i, field := range record {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("load csv %s: line %d column %d: %w", name, len(rows)+1, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("load csv %s: no rows", name)
	}
	return rows, nil
}

// LoadTMX reads one tile layer of a Tiled map. Nil tiles become Empty.
func LoadTMX(fsys fs.FS, name, layerName string) ([][]int, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != layerName {
			continue
		}
		rows := make([][]int, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			rows[y] = make([]int, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() {
					rows[y][x] = Empty
					continue
				}
				rows[y][x] = int(tile.ID)
			}
		}
		return rows, nil
	}

	return nil, fmt.Errorf("load TMX %s: no tile layer named %q", name, layerName)
}

// LoadMap builds a Map from the given layer sources. The solid layer is
// required; the others may be omitted.
func LoadMap(fsys fs.FS, sources map[Layer]Source) (*Map, error) {
	if sources[LayerSolid].Path == "" {
		return nil, errors.New("load map: no solid layer")
	}

	m := &Map{}
	for layer, src := range sources {
		if src.Path == "" {
			continue
		}
		rows, err := LoadLayer(fsys, src)
		if err != nil {
			return nil, err
		}
		g, err := NewGrid(rows)
		if err != nil {
			return nil, fmt.Errorf("load map %s (%s): %w", src.Path, layer, err)
		}
		switch layer {
		case LayerSolid:
			m.Solid = g
		case LayerSingleWay:
			m.SingleWay = g
		case LayerDecoration:
			m.Decoration = g
		}
	}
	return m, nil
}
