package paint

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts caches faces of one typeface by pixel size.
type Fonts struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

func NewFonts(ttf []byte) (*Fonts, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Fonts{font: f, faces: make(map[float64]font.Face)}, nil
}

var defaultFonts = sync.OnceValues(func() (*Fonts, error) {
	return NewFonts(goregular.TTF)
})

// DefaultFonts returns the shared Go Regular face cache.
func DefaultFonts() (*Fonts, error) {
	return defaultFonts()
}

func (f *Fonts) Face(size float64) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %.1fpx: %w", size, err)
	}
	f.faces[size] = face
	return face, nil
}
