// Package sprites cuts character frames out of a sheet image.
package sprites

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/automoto/ingotown/assets/animations"
	"github.com/automoto/ingotown/assets/art"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet is a grid of square frames: one row per sprite index, one column
// per animation frame.
type Sheet struct {
	img    *ebiten.Image
	size   int
	rows   int
	frames map[[2]int]*ebiten.Image
}

func newSheet(img *ebiten.Image, size int) *Sheet {
	return &Sheet{
		img:    img,
		size:   size,
		rows:   img.Bounds().Dy() / size,
		frames: make(map[[2]int]*ebiten.Image),
	}
}

// LoadSheet decodes a PNG sheet from fsys.
func LoadSheet(fsys fs.FS, name string, size int) (*Sheet, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("sprites: open %s: %w", name, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprites: decode %s: %w", name, err)
	}
	if src.Bounds().Dx() < size*animations.SheetColumns || src.Bounds().Dy() < size {
		return nil, fmt.Errorf("sprites: %s is smaller than one row of %dpx frames", name, size)
	}
	return newSheet(ebiten.NewImageFromImage(src), size), nil
}

// Frame returns the sub-image for sprite row and column, cached so each
// frame is cut only once. Rows past the end of the sheet wrap.
func (s *Sheet) Frame(sprite, column int) *ebiten.Image {
	if s.rows > 0 {
		sprite = ((sprite % s.rows) + s.rows) % s.rows
	}
	key := [2]int{sprite, column}
	if img, ok := s.frames[key]; ok {
		return img
	}
	r := image.Rect(column*s.size, sprite*s.size, (column+1)*s.size, (sprite+1)*s.size)
	frame := s.img.SubImage(r).(*ebiten.Image)
	s.frames[key] = frame
	return frame
}

func (s *Sheet) Size() int {
	return s.size
}

// NewPlaceholderSheet builds the default character sheet in memory.
func NewPlaceholderSheet(size int) *Sheet {
	return newSheet(ebiten.NewImageFromImage(art.PlaceholderImage(size)), size)
}
