package floorplan

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// GoFontMeasurer measures label text with the Go regular typeface, caching
// one face per font size. It is safe for the single event-driven thread of
// control the viewer runs on; it holds no locks.
type GoFontMeasurer struct {
	parsed *opentype.Font
	faces  map[float64]font.Face
}

// NewGoFontMeasurer parses the embedded typeface once. Parsing goregular
// cannot realistically fail, but if it does the measurer falls back to the
// fixed 7x13 face rather than erroring.
func NewGoFontMeasurer() *GoFontMeasurer {
	m := &GoFontMeasurer{faces: make(map[float64]font.Face)}
	if fnt, err := opentype.Parse(goregular.TTF); err == nil {
		m.parsed = fnt
	}
	return m
}

// Width returns the rendered width of text at the given size, in the same
// units the size is expressed in.
func (m *GoFontMeasurer) Width(text string, size float64) float64 {
	return float64(font.MeasureString(m.face(size), text).Ceil())
}

func (m *GoFontMeasurer) face(size float64) font.Face {
	if f, ok := m.faces[size]; ok {
		return f
	}
	var f font.Face = basicfont.Face7x13
	if m.parsed != nil {
		if made, err := opentype.NewFace(m.parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}); err == nil {
			f = made
		}
	}
	m.faces[size] = f
	return f
}
