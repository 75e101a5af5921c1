package starfield

import (
	"fmt"
	"math"

	"github.com/smarthome-go/starfield/starfield/errors"
)

const DefaultStars = 10
const DefaultTimer = 40

// Upper bound for the star count, keeps the animation footer below line 63999.
const MaxStars = 500

// Radius of the circle all velocities lie on.
const Radius = 20

// Screen position every star starts from (center of the 40x40 lo-res screen).
const Center = 20

// Colors are drawn from [MinColor, MaxColor].
const MinColor = 1
const MaxColor = 14

type Params struct {
	// Number of stars (N)
	Stars int
	// Period of the phase counter (TS)
	Timer int
}

func DefaultParams() Params {
	return Params{
		Stars: DefaultStars,
		Timer: DefaultTimer,
	}
}

func (self Params) Validate() error {
	if self.Stars < 1 || self.Stars > MaxStars {
		return errors.NewError(
			fmt.Sprintf("star count must be in [1, %d], got %d", MaxStars, self.Stars),
			errors.ParameterError,
		)
	}

	if self.Timer < 2 {
		return errors.NewError(
			fmt.Sprintf("timer period must be at least 2, got %d", self.Timer),
			errors.ParameterError,
		)
	}

	return nil
}

type Star struct {
	DX    int
	DY    int
	Color int
	// Only drawn for variants with a per-star phase, zero otherwise
	Phase int
}

// NewStar derives the velocity from an angle given in turns.
// The components are truncated toward zero, not rounded.
func NewStar(angle float64, color int, phase int) Star {
	return Star{
		DX:    int(Radius * math.Cos(angle*2*math.Pi)),
		DY:    int(Radius * math.Sin(angle*2*math.Pi)),
		Color: color,
		Phase: phase,
	}
}

// GenerateStars draws `params.Stars` stars.
// Per star, the angle is drawn first, then the color, then the phase (if requested).
func GenerateStars(params Params, source Source, withPhase bool) ([]Star, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	stars := make([]Star, 0, params.Stars)

	for i := 0; i < params.Stars; i++ {
		angle := source.Float64()
		color := randRange(source, MinColor, MaxColor+1)

		phase := 0
		if withPhase {
			// NOTE: the upper bound also excludes `Timer - 1`, phases stay in [0, Timer-2]
			phase = randRange(source, 0, params.Timer-1)
		}

		stars = append(stars, NewStar(angle, color, phase))
	}

	return stars, nil
}
