package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// button is a rectangle that fires onClick when pressed and released over it.
type button struct {
	x, y, w, h int
	label      string
	onClick    func()

	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// update tracks hover and clicks and reports whether the button took the mouse this frame.
func (b *button) update(mouseX, mouseY int) bool {
	b.hovered = b.contains(mouseX, mouseY)

	took := false
	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
		took = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if b.pressed && b.hovered {
			b.onClick()
			took = true
		}
		b.pressed = false
	}
	return took
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 0x45, G: 0x1a, B: 0x72, A: 255} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 0x68, G: 0x22, B: 0x8b, A: 255} // darkorchid4
	} else {
		bgColor = color.RGBA{R: 0x48, G: 0x3d, B: 0x8b, A: 255} // darkslateblue
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, borderColor, false)

	textWidth := len(b.label) * 7 // basicfont glyphs are 7px wide
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h+10)/2
	text.Draw(screen, b.label, basicfont.Face7x13, textX, textY, color.White)
}
