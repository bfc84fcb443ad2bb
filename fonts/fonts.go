package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face wraps the font for text/v2 and ebitenui.
func (f FontName) Face() text.Face {
	if tf, ok := textFaces[f]; ok {
		return tf
	}
	tf := text.NewGoXFace(getFont(f))
	textFaces[f] = tf
	return tf
}

var (
	fonts     = map[FontName]font.Face{}
	textFaces = map[FontName]text.Face{}
)

// LoadDefaults loads the Go fonts at the sizes the HUD and overlays use.
func LoadDefaults(hudSize, debugSize float64) error {
	if err := LoadFontWithSize(Regular, goregular.TTF, hudSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Bold, gobold.TTF, hudSize+4); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, gobold.TTF, 48); err != nil {
		return err
	}
	return LoadFontWithSize(Small, goregular.TTF, debugSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(textFaces, name)
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
