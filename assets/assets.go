package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/nightrain/config"
	"github.com/automoto/nightrain/shared/gameconfig"
	"github.com/automoto/nightrain/shared/leveldata"
	"github.com/automoto/nightrain/shared/spritesheet"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS exposes the embedded levels for the headless loaders.
func LevelFS() fs.FS {
	return assetFS
}

func MustLoadLevel(path string) *leveldata.Level {
	lvl, err := leveldata.Load(assetFS, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", path, err))
	}
	return lvl
}

// SheetLoader caches the ninja sheet and the frames cut from it.
type SheetLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewSheetLoader() *SheetLoader {
	return &SheetLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// MustLoadSheet reads a sprite sheet from disk. An empty path draws the
// placeholder sheet instead.
func (l *SheetLoader) MustLoadSheet(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	var src image.Image
	if path == "" {
		src = spritesheet.Placeholder(config.NinjaSheet)
	} else {
		var err error
		if src, err = spritesheet.Load(path); err != nil {
			panic(fmt.Sprintf("Failed to load sprite sheet: %v", err))
		}
	}

	img := ebiten.NewImageFromImage(src)
	l.cache[path] = img
	return img
}

// GetFrame returns a cached sub-image for one cell of the sheet.
func (l *SheetLoader) GetFrame(path string, layout gameconfig.SheetLayout, cell gameconfig.Cell) *ebiten.Image {
	key := fmt.Sprintf("%s/%d/%d", path, cell.Row, cell.Col)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadSheet(path)
	r := spritesheet.CellRect(layout, cell).Add(sheet.Bounds().Min)
	if !r.In(sheet.Bounds()) {
		panic(fmt.Sprintf("Sprite sheet %q has no cell (%d,%d)", path, cell.Row, cell.Col))
	}
	frame := sheet.SubImage(r).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

// GetMirroredFrame returns the horizontally flipped copy of a cell.
func (l *SheetLoader) GetMirroredFrame(path string, layout gameconfig.SheetLayout, cell gameconfig.Cell) *ebiten.Image {
	key := fmt.Sprintf("%s/%d/%d/mirrored", path, cell.Row, cell.Col)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	src := l.GetFrame(path, layout, cell)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	flipped := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(-1, 1)
	op.GeoM.Translate(float64(w), 0)
	flipped.DrawImage(src, op)

	l.frameCache[key] = flipped
	return flipped
}

var (
	sheetLoader = NewSheetLoader()
)

func GetFrame(path string, layout gameconfig.SheetLayout, cell gameconfig.Cell) *ebiten.Image {
	return sheetLoader.GetFrame(path, layout, cell)
}

func GetMirroredFrame(path string, layout gameconfig.SheetLayout, cell gameconfig.Cell) *ebiten.Image {
	return sheetLoader.GetMirroredFrame(path, layout, cell)
}
