// Package art draws the placeholder graphics used when no sheet is supplied.
package art

import (
	"image"
	"image/color"

	"github.com/automoto/ingotown/assets/animations"
	"github.com/automoto/ingotown/shared/tilemap"
)

// Palette gives every sprite row its own colours on the placeholder sheet.
var Palette = []struct{ Body, Trim color.RGBA }{
	{color.RGBA{R: 70, G: 130, B: 220, A: 255}, color.RGBA{R: 250, G: 220, B: 170, A: 255}}, // player
	{color.RGBA{R: 150, G: 150, B: 150, A: 255}, color.RGBA{R: 240, G: 210, B: 160, A: 255}},
	{color.RGBA{R: 170, G: 70, B: 40, A: 255}, color.RGBA{R: 230, G: 190, B: 140, A: 255}},
	{color.RGBA{R: 110, G: 80, B: 150, A: 255}, color.RGBA{R: 220, G: 220, B: 220, A: 255}},
	{color.RGBA{R: 220, G: 170, B: 40, A: 255}, color.RGBA{R: 250, G: 220, B: 170, A: 255}},
	{color.RGBA{R: 90, G: 110, B: 60, A: 255}, color.RGBA{R: 240, G: 200, B: 150, A: 255}},
}

// PlaceholderImage draws a sheet of simple figures: a head of trim colour
// over a body of the row colour, with the legs shifted per column so the
// walk cycle reads.
func PlaceholderImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size*animations.SheetColumns, size*len(Palette)))
	for row, p := range Palette {
		for col := 0; col < animations.SheetColumns; col++ {
			ox, oy := col*size, row*size
			head := size / 3
			for y := 0; y < size; y++ {
				for x := 1; x < size-1; x++ {
					switch {
					case y < head && x > 1 && x < size-2:
						img.SetRGBA(ox+x, oy+y, p.Trim)
					case y >= head && y < size-2:
						img.SetRGBA(ox+x, oy+y, p.Body)
					case y >= size-2 && legAt(x, col, size):
						img.SetRGBA(ox+x, oy+y, p.Body)
					}
				}
			}
			// Eye on the facing side; frames are drawn facing right.
			img.SetRGBA(ox+size-3, oy+head/2+1, color.RGBA{A: 255})
		}
	}
	return img
}

func legAt(x, col, size int) bool {
	shift := 0
	switch col {
	case 1:
		shift = 1
	case 3:
		shift = -1
	case 4:
		return x == 2 || x == size-3
	}
	return x == 2+shift || x == size-3-shift
}

// TileColor returns the colour a tile id is drawn with on a layer.
func TileColor(layer tilemap.Layer, id int) color.RGBA {
	switch layer {
	case tilemap.LayerSingleWay:
		return color.RGBA{R: 150, G: 100, B: 50, A: 255}
	case tilemap.LayerDecoration:
		shades := []color.RGBA{
			{R: 60, G: 120, B: 60, A: 255},
			{R: 200, G: 180, B: 90, A: 255},
			{R: 120, G: 90, B: 140, A: 255},
		}
		return shades[abs(id)%len(shades)]
	}
	shades := []color.RGBA{
		{R: 90, G: 80, B: 70, A: 255},
		{R: 110, G: 100, B: 90, A: 255},
		{R: 70, G: 70, B: 80, A: 255},
		{R: 140, G: 110, B: 60, A: 255},
	}
	return shades[abs(id)%len(shades)]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
