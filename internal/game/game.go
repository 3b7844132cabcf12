// Package game is the ebiten frame loop around the photon scene.
package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/photon-bounce/internal/config"
	"github.com/iburimskiy/photon-bounce/internal/optics"
)

const help = "LMB drag | wheel resize | R remove | RMB on source toggle | C clear | Esc quit"

// Settings is the panel the "Set vars" button opens.
type Settings interface {
	Open()
}

type Game struct {
	scene    *optics.Scene
	feed     *config.Feed
	settings Settings
	sound    *sonifier

	input   inputState
	buttons []*button

	width, height int
	ticks         uint64
	last          optics.Stats
}

// New wires the frame loop. soundRNG seeds the click noise and is used only
// from the audio thread; sound stays off when it is nil.
func New(cfg *config.Config, scene *optics.Scene, feed *config.Feed, settings Settings, soundRNG *rand.Rand) *Game {
	g := &Game{
		scene:    scene,
		feed:     feed,
		settings: settings,
		width:    cfg.Width,
		height:   cfg.Height,
	}

	addX := cfg.Width - config.ButtonMargin*2 - config.ButtonWidth
	y := cfg.Height - config.ButtonBottom
	g.buttons = []*button{
		{x: addX, y: y, w: config.ButtonWidth, h: config.ButtonHeight, label: "Add", onClick: func() { scene.AddRandomObstacle() }},
		{x: addX - config.ButtonMargin - config.ButtonWidth, y: y, w: config.ButtonWidth, h: config.ButtonHeight, label: "Set vars", onClick: settings.Open},
	}

	if soundRNG != nil {
		s, err := startSonifier(soundRNG)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			g.sound = s
		}
	}
	return g
}

// Update runs one frame: apply posted tunables, dispatch input, step the scene.
func (g *Game) Update() error {
	g.scene.Tunables = g.feed.Drain(g.scene.Tunables)

	mouseX, mouseY := ebiten.CursorPosition()
	took := false
	for _, b := range g.buttons {
		if b.update(mouseX, mouseY) {
			took = true
		}
	}

	if g.scene.Dispatch(g.input.collect(took)) {
		return ebiten.Termination
	}
	if g.sound != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sound.toggle()
	}

	g.last = g.scene.Step()
	if g.sound != nil {
		g.sound.frame(g.last)
	}
	g.ticks++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.scene.Draw(screenCanvas{dst: screen})

	for _, b := range g.buttons {
		b.draw(screen)
	}

	fps := fmt.Sprintf("%.2f FPS", ebiten.ActualFPS())
	text.Draw(screen, fps, basicfont.Face7x13, g.width-100-len(fps)*7/2, 50, color.White)

	status := fmt.Sprintf("%s | photons %d | %s", formatDuration(ticksToDuration(g.ticks, ebiten.TPS())), g.last.Live, help)
	if g.sound != nil {
		if g.sound.muted() {
			status += " | M sound on"
		} else {
			status += " | M mute"
		}
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
