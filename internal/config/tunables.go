package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Tunables are the live simulation parameters edited from the settings panel.
type Tunables struct {
	// AxisJitter is the half-width of the uniform perturbation applied to angles and positions.
	AxisJitter            float64 `toml:"axis_jitter"`
	AbsorptionProbability float64 `toml:"absorption_probability"`
	SpawnPeriodTicks      int     `toml:"spawn_period_ticks"`
	AngularStepDegrees    int     `toml:"angular_step_degrees"`
	PhotonPixelSize       int     `toml:"photon_pixel_size"`
}

func DefaultTunables() Tunables {
	return Tunables{
		AxisJitter:            0.2,
		AbsorptionProbability: 0.3,
		SpawnPeriodTicks:      20,
		AngularStepDegrees:    2,
		PhotonPixelSize:       1,
	}
}

// Field names one tunable.
type Field int

const (
	AxisJitter Field = iota
	AbsorptionProbability
	SpawnPeriodTicks
	AngularStepDegrees
	PhotonPixelSize
)

// Fields lists the tunables in the order the settings panel shows them.
var Fields = []Field{AxisJitter, AbsorptionProbability, SpawnPeriodTicks, AngularStepDegrees, PhotonPixelSize}

func (f Field) String() string {
	switch f {
	case AxisJitter:
		return "Random axis value (float)"
	case AbsorptionProbability:
		return "Probability of photon absorption (float)"
	case SpawnPeriodTicks:
		return "Ticks period of photons spawn (int)"
	case AngularStepDegrees:
		return "Degrees step of photons generation (int)"
	case PhotonPixelSize:
		return "Photon size (int)"
	}
	return "unknown field " + strconv.Itoa(int(f))
}

// Get formats the current value of f.
func (t Tunables) Get(f Field) string {
	switch f {
	case AxisJitter:
		return strconv.FormatFloat(t.AxisJitter, 'g', -1, 64)
	case AbsorptionProbability:
		return strconv.FormatFloat(t.AbsorptionProbability, 'g', -1, 64)
	case SpawnPeriodTicks:
		return strconv.Itoa(t.SpawnPeriodTicks)
	case AngularStepDegrees:
		return strconv.Itoa(t.AngularStepDegrees)
	case PhotonPixelSize:
		return strconv.Itoa(t.PhotonPixelSize)
	}
	return ""
}

// Set parses text into f. On error the stored value is left unchanged.
func (t *Tunables) Set(f Field, text string) error {
	switch f {
	case AxisJitter, AbsorptionProbability:
		v, err := ParseFloat(text)
		if err != nil {
			return errors.Wrap(err, f.String())
		}
		if f == AxisJitter {
			t.AxisJitter = v
		} else {
			t.AbsorptionProbability = v
		}
	case SpawnPeriodTicks, AngularStepDegrees, PhotonPixelSize:
		v, err := ParseInt(text)
		if err != nil {
			return errors.Wrap(err, f.String())
		}
		switch f {
		case SpawnPeriodTicks:
			t.SpawnPeriodTicks = v
		case AngularStepDegrees:
			t.AngularStepDegrees = v
		default:
			t.PhotonPixelSize = v
		}
	default:
		return errors.Errorf("unknown field %d", int(f))
	}
	return nil
}

// ParseFloat accepts a comma as decimal separator and ignores surrounding space.
func ParseFloat(text string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("%q is not a number", text)
	}
	return v, nil
}

func ParseInt(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.Errorf("%q is not an integer", text)
	}
	return v, nil
}
