package spritesheet

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/automoto/nightrain/shared/gameconfig"
)

var placeholderPalette = []color.NRGBA{
	{R: 0x3a, G: 0x6e, B: 0xa5, A: 0xff},
	{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
	{R: 0x27, G: 0xae, B: 0x60, A: 0xff},
	{R: 0x8e, G: 0x44, B: 0xad, A: 0xff},
	{R: 0xd3, G: 0x54, B: 0x00, A: 0xff},
}

// Placeholder draws a stand-in sheet for when no artwork is available. Every
// cell holds a body with a head on its right side, so facing is visible, and
// an arm bar whose height follows the column, so frame changes are visible.
func Placeholder(layout gameconfig.SheetLayout) *image.NRGBA {
	w, h := layout.TileWidth, layout.TileHeight
	sheet := imaging.New(layout.Cols*w, layout.Rows*h, color.Transparent)

	fill := func(r image.Rectangle, c color.Color) {
		draw.Draw(sheet, r, image.NewUniform(c), image.Point{}, draw.Src)
	}

	for row := 0; row < layout.Rows; row++ {
		body := placeholderPalette[row%len(placeholderPalette)]
		for col := 0; col < layout.Cols; col++ {
			origin := image.Pt(col*w, row*h)

			bw, bh := w*3/10, h*6/10
			bx, by := w/2-bw/2, h-bh
			fill(image.Rect(bx, by, bx+bw, by+bh).Add(origin), body)

			hs := w / 6
			fill(image.Rect(bx+bw-hs/2, by-hs, bx+bw+hs/2, by).Add(origin), color.NRGBA{R: 0xf0, G: 0xd0, B: 0xa0, A: 0xff})

			ay := by + (col+1)*bh/(layout.Cols+2)
			fill(image.Rect(bx+bw, ay, bx+bw+w/5, ay+h/30+1).Add(origin), color.White)
		}
	}
	return sheet
}
