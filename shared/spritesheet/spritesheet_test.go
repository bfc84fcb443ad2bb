package spritesheet

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightrain/shared/gameconfig"
)

// smallLayout keeps the tests fast while using the same cell grid.
var smallLayout = gameconfig.SheetLayout{TileWidth: 16, TileHeight: 16, Cols: 4, Rows: 5}

func TestPlaceholderSize(t *testing.T) {
	sheet := Placeholder(gameconfig.NinjaSheet)
	assert.Equal(t, 1280, sheet.Bounds().Dx())
	assert.Equal(t, 1600, sheet.Bounds().Dy())
}

func TestPlaceholderIsAsymmetric(t *testing.T) {
	sheet := Placeholder(smallLayout)
	cell := sheet.SubImage(CellRect(smallLayout, gameconfig.Cell{})).(*image.NRGBA)
	b := cell.Bounds()

	symmetric := true
	for y := b.Min.Y; y < b.Max.Y && symmetric; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if cell.NRGBAAt(x, y) != cell.NRGBAAt(b.Max.X-1-(x-b.Min.X), y) {
				symmetric = false
				break
			}
		}
	}
	assert.False(t, symmetric, "placeholder cell should show which way it faces")
}

func TestSliceBuildsEveryState(t *testing.T) {
	table, err := Slice(Placeholder(smallLayout), smallLayout, &gameconfig.NinjaAnimations)
	require.NoError(t, err)

	for id, def := range gameconfig.NinjaAnimations {
		seq := table[id]
		require.Len(t, seq.Frames, len(def.Cells), gameconfig.StateID(id).String())
		require.Len(t, seq.Mirrored, len(def.Cells))
		assert.Equal(t, def.Speed, seq.Speed)
		for _, f := range seq.Frames {
			assert.Equal(t, image.Rect(0, 0, 16, 16), f.Bounds())
		}
	}
}

func TestSliceMirrorsPixels(t *testing.T) {
	table, err := Slice(Placeholder(smallLayout), smallLayout, &gameconfig.NinjaAnimations)
	require.NoError(t, err)

	seq := table[gameconfig.Run]
	for i := range seq.Frames {
		src, dst := seq.Frames[i], seq.Mirrored[i]
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				require.Equal(t,
					color.NRGBAModel.Convert(src.At(x, y)),
					color.NRGBAModel.Convert(dst.At(15-x, y)),
					"frame %d pixel (%d,%d)", i, x, y)
			}
		}
	}
}

func TestSliceCropsTheRightCell(t *testing.T) {
	sheet := Placeholder(smallLayout)
	table, err := Slice(sheet, smallLayout, &gameconfig.NinjaAnimations)
	require.NoError(t, err)

	// Jump is row 2, col 1
	r := CellRect(smallLayout, gameconfig.NinjaAnimations[gameconfig.Jump].Cells[0])
	got := table[gameconfig.Jump].Frames[0]
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t,
				sheet.NRGBAAt(r.Min.X+x, r.Min.Y+y),
				color.NRGBAModel.Convert(got.At(x, y)))
		}
	}
}

func TestSliceRejectsCellsOutsideSheet(t *testing.T) {
	tiny := gameconfig.SheetLayout{TileWidth: 16, TileHeight: 16, Cols: 2, Rows: 2}
	_, err := Slice(Placeholder(tiny), smallLayout, &gameconfig.NinjaAnimations)
	assert.ErrorIs(t, err, ErrCellOutOfBounds)
}

func TestFilmstrip(t *testing.T) {
	frames := []image.Image{
		image.NewNRGBA(image.Rect(0, 0, 8, 8)),
		image.NewNRGBA(image.Rect(0, 0, 8, 8)),
		image.NewNRGBA(image.Rect(0, 0, 8, 8)),
	}

	strip := Filmstrip(frames, 2, color.Black)
	assert.Equal(t, image.Rect(0, 0, 16, 16), strip.Bounds())

	strip = Filmstrip(frames, 10, color.Black)
	assert.Equal(t, image.Rect(0, 0, 24, 8), strip.Bounds())

	strip = Filmstrip(nil, 4, color.Black)
	assert.Equal(t, image.Rect(0, 0, 1, 1), strip.Bounds())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, Save(Placeholder(smallLayout), path))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	_, err = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, Placeholder(smallLayout)))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	_, err = Decode(bytes.NewReader([]byte("not a png")))
	assert.Error(t, err)
}
