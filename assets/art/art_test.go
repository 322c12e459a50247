package art

import (
	"testing"

	"github.com/automoto/ingotown/assets/animations"
	"github.com/automoto/ingotown/shared/tilemap"
)

func TestPlaceholderImageLayout(t *testing.T) {
	const size = 8
	img := PlaceholderImage(size)
	b := img.Bounds()
	if b.Dx() != size*animations.SheetColumns || b.Dy() != size*len(Palette) {
		t.Fatalf("bounds = %v", b)
	}
	for row, p := range Palette {
		// Middle of the torso of the first frame in each row.
		if got := img.RGBAAt(size/2, row*size+size/2); got != p.Body {
			t.Fatalf("row %d torso = %v, want %v", row, got, p.Body)
		}
	}
	// Legs move between walk frames.
	if img.RGBAAt(size+3, size-1) == img.RGBAAt(3*size+3, size-1) {
		t.Fatalf("walk frames 1 and 3 have the same legs")
	}
}

func TestTileColorStable(t *testing.T) {
	if TileColor(tilemap.LayerSolid, 1) != TileColor(tilemap.LayerSolid, 5) {
		t.Fatalf("solid shades should repeat every four ids")
	}
	if TileColor(tilemap.LayerSingleWay, 0) != TileColor(tilemap.LayerSingleWay, 9) {
		t.Fatalf("single-way tiles share one colour")
	}
	_ = TileColor(tilemap.LayerDecoration, -3)
}
