package optics

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/iburimskiy/photon-bounce/internal/geom"
)

// Canvas is the drawing surface a frame is rendered onto.
type Canvas interface {
	FillCircle(center geom.Point, radius float64, c color.Color)
	FillSquare(topLeft geom.Point, size float64, c color.Color)
}

// Palette maps a photon's reflection count to its color. Its length bounds
// the number of reflections a photon survives.
type Palette []color.Color

// ParseColor reads a "#rrggbb" string.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, errors.Wrapf(err, "color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func ParsePalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errors.New("empty palette")
	}
	p := make(Palette, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		p[i] = c
	}
	return p, nil
}
