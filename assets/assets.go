package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/ingotown/shared/locations"
)

// CatalogueName is the catalogue file at the root of a data directory.
const CatalogueName = "locations.yaml"

var (
	//go:embed all:data
	dataFS embed.FS
)

// Data returns the embedded location data.
func Data() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded data missing: %v", err))
	}
	return sub
}

// Open returns dir on disk when set, the embedded data otherwise.
func Open(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return Data()
}

// LoadCatalogue reads the location catalogue from the root of fsys.
func LoadCatalogue(fsys fs.FS) (*locations.Catalogue, error) {
	return locations.Load(fsys, CatalogueName)
}
