package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Button dimensions, anchored to the bottom right corner
	ButtonWidth  = 100
	ButtonHeight = 50
	ButtonMargin = 25
	ButtonBottom = 75

	// Scene parameters
	EmitterRadius     = 5
	InitialObstacles  = 4
	ObstacleMinRadius = 10
	ObstacleMaxRadius = 100

	// Sonification parameters
	SampleRate    = 44100
	ClickRingSize = 512
	ClickDecay    = 0.995
)

// Config is the startup configuration, read from an optional TOML file.
type Config struct {
	Width     int   `toml:"width"`
	Height    int   `toml:"height"`
	Obstacles int   `toml:"obstacles"`
	Seed      int64 `toml:"seed"` // zero seeds from the clock
	Sound     bool  `toml:"sound"`

	Tunables Tunables `toml:"tunables"`
	Colors   Colors   `toml:"colors"`
}

// Colors are hex strings ("#rrggbb").
type Colors struct {
	Emitter  string   `toml:"emitter"`
	Obstacle string   `toml:"obstacle"`
	Fade     []string `toml:"fade"` // one entry per reflection count, exactly eight
}

// DefaultFade runs white → purple → blue → aqua → green → yellow → orange → red.
var DefaultFade = []string{
	"#ffffff", "#a020f0", "#0000ff", "#00ffff",
	"#00ff00", "#ffff00", "#ffa500", "#ff0000",
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Width:     WindowWidth,
		Height:    WindowHeight,
		Obstacles: InitialObstacles,
		Tunables:  DefaultTunables(),
		Colors: Colors{
			Emitter:  "#ffffe0",
			Obstacle: "#696969",
			Fade:     append([]string(nil), DefaultFade...),
		},
	}
}
