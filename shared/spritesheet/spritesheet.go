// Package spritesheet cuts the ninja sheet into per-state frame tables for the
// headless tools, and renders filmstrips of simulated frames.
package spritesheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"

	"github.com/automoto/nightrain/shared/anim"
	"github.com/automoto/nightrain/shared/gameconfig"
)

// ErrCellOutOfBounds is returned when an animation addresses a cell outside
// the sheet.
var ErrCellOutOfBounds = errors.New("cell outside sprite sheet")

// Load opens a sheet from disk.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite sheet %s: %w", path, err)
	}
	return img, nil
}

// Decode reads a sheet from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet: %w", err)
	}
	return img, nil
}

// CellRect returns the pixel rectangle of a cell relative to the sheet origin.
func CellRect(layout gameconfig.SheetLayout, c gameconfig.Cell) image.Rectangle {
	x := c.Col * layout.TileWidth
	y := c.Row * layout.TileHeight
	return image.Rect(x, y, x+layout.TileWidth, y+layout.TileHeight)
}

// Slice cuts every state's cells out of the sheet and pre-computes the
// mirrored copies used when the ninja faces left.
func Slice(sheet image.Image, layout gameconfig.SheetLayout, defs *gameconfig.AnimationSet) (*anim.Table[image.Image], error) {
	bounds := sheet.Bounds()
	cache := make(map[gameconfig.Cell]image.Image)

	var table anim.Table[image.Image]
	for id, def := range defs {
		frames := make([]image.Image, 0, len(def.Cells))
		for _, c := range def.Cells {
			if img, ok := cache[c]; ok {
				frames = append(frames, img)
				continue
			}
			r := CellRect(layout, c).Add(bounds.Min)
			if !r.In(bounds) {
				return nil, fmt.Errorf("%w: state %s cell (%d,%d) %v not in %v",
					ErrCellOutOfBounds, gameconfig.StateID(id), c.Row, c.Col, r, bounds)
			}
			img := imaging.Crop(sheet, r)
			cache[c] = img
			frames = append(frames, img)
		}
		table[id] = anim.NewSequence(frames, def.Speed, mirror)
	}
	return &table, nil
}

func mirror(img image.Image) image.Image {
	return imaging.FlipH(img)
}

// Filmstrip lays frames out left to right, wrapping after cols frames.
func Filmstrip(frames []image.Image, cols int, bg color.Color) *image.NRGBA {
	if len(frames) == 0 || cols <= 0 {
		return imaging.New(1, 1, bg)
	}
	fw, fh := 0, 0
	for _, f := range frames {
		fw = max(fw, f.Bounds().Dx())
		fh = max(fh, f.Bounds().Dy())
	}
	rows := (len(frames) + cols - 1) / cols
	if len(frames) < cols {
		cols = len(frames)
	}

	strip := imaging.New(cols*fw, rows*fh, bg)
	for i, f := range frames {
		pt := image.Pt((i%cols)*fw, (i/cols)*fh)
		draw.Draw(strip, f.Bounds().Sub(f.Bounds().Min).Add(pt), f, f.Bounds().Min, draw.Over)
	}
	return strip
}

// Save writes an image, picking the format from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
