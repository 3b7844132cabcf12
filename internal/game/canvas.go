package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/photon-bounce/internal/geom"
)

// screenCanvas draws scene primitives onto an ebiten image.
type screenCanvas struct {
	dst *ebiten.Image
}

func (c screenCanvas) FillCircle(center geom.Point, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c screenCanvas) FillSquare(topLeft geom.Point, size float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(topLeft.X), float32(topLeft.Y), float32(size), float32(size), clr, false)
}
