package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/photon-bounce/internal/config"
	"github.com/iburimskiy/photon-bounce/internal/game"
	"github.com/iburimskiy/photon-bounce/internal/optics"
	"github.com/iburimskiy/photon-bounce/internal/settings"
)

func main() {
	log.SetPrefix("photons: ")

	configPath := flag.String("config", "", "TOML config file")
	width := flag.Int("width", 0, "canvas width, overrides config")
	height := flag.Int("height", 0, "canvas height, overrides config")
	sound := flag.Bool("sound", false, "click on absorptions and reflections")
	seed := flag.Int64("seed", 0, "random seed, overrides config (0 uses the clock)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *sound {
		cfg.Sound = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	palette, err := optics.ParsePalette(cfg.Colors.Fade)
	if err != nil {
		return errors.Wrap(err, "fade colors")
	}
	emitterColor, err := optics.ParseColor(cfg.Colors.Emitter)
	if err != nil {
		return errors.Wrap(err, "emitter color")
	}
	obstacleColor, err := optics.ParseColor(cfg.Colors.Obstacle)
	if err != nil {
		return errors.Wrap(err, "obstacle color")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d, canvas %dx%d", seed, cfg.Width, cfg.Height)

	scene := optics.NewScene(float64(cfg.Width), float64(cfg.Height), cfg.Tunables, palette, rand.New(rand.NewSource(seed)))
	scene.EmitterColor = emitterColor
	scene.ObstacleColor = obstacleColor
	scene.Populate(cfg.Obstacles)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := config.NewFeed()
	panel := settings.New(feed, cfg.Tunables, settings.NativeDialogs())
	go func() {
		if err := panel.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("settings panel stopped: %v", err)
		}
	}()

	var soundRNG *rand.Rand
	if cfg.Sound {
		soundRNG = rand.New(rand.NewSource(seed + 1))
	}
	g := game.New(cfg, scene, feed, panel, soundRNG)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Photons - hold LMB to move, wheel to resize, R remove, RMB on source toggle, C clear, Esc quit")
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}
