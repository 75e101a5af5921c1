package starfield

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/smarthome-go/starfield/starfield/errors"
)

// Variant selects how the animation phase of the stars is tracked in the emitted program.
type Variant uint8

const (
	// One global `T` shared by all stars, FOR/NEXT loops.
	SharedPhaseVariant Variant = iota
	// Every star owns `T(I)`, the star loop is built from GOTO branches.
	TimerPhaseVariant
	// Like `TimerPhaseVariant`, but the star count is the BASIC variable `N`.
	ParamPhaseVariant
)

const DefaultVariant = TimerPhaseVariant

// Maximum edit distance for which a variant name is suggested.
const suggestionDistance = 3

var Variants = []Variant{
	SharedPhaseVariant,
	TimerPhaseVariant,
	ParamPhaseVariant,
}

func (self Variant) String() string {
	switch self {
	case SharedPhaseVariant:
		return "shared"
	case TimerPhaseVariant:
		return "timer"
	case ParamPhaseVariant:
		return "param"
	default:
		panic("A new variant was introduced without updating this code")
	}
}

func (self Variant) Description() string {
	switch self {
	case SharedPhaseVariant:
		return "one shared phase, nested FOR/NEXT loops over the phase and the stars"
	case TimerPhaseVariant:
		return "per-star phase counters, GOTO-driven star loop with a literal star count"
	case ParamPhaseVariant:
		return "per-star phase counters, star count held in the BASIC variable N"
	default:
		panic("A new variant was introduced without updating this code")
	}
}

// HasPhase reports whether stars of this variant carry their own phase offset.
func (self Variant) HasPhase() bool {
	return self != SharedPhaseVariant
}

// ParseVariant resolves a variant name, ignoring case.
func ParseVariant(name string) (Variant, error) {
	folder := cases.Fold()
	folded := folder.String(strings.TrimSpace(name))

	for _, variant := range Variants {
		if variant.String() == folded {
			return variant, nil
		}
	}

	message := fmt.Sprintf("unknown variant `%s`", name)

	if suggestion, found := suggestVariant(folded); found {
		message += fmt.Sprintf(", did you mean `%s`?", suggestion)
	} else {
		names := make([]string, 0, len(Variants))
		for _, variant := range Variants {
			names = append(names, variant.String())
		}
		message += fmt.Sprintf(" (valid variants are %s)", strings.Join(names, ", "))
	}

	return 0, errors.NewError(message, errors.VariantError)
}

func suggestVariant(name string) (Variant, bool) {
	best := Variant(0)
	bestDistance := -1

	for _, variant := range Variants {
		distance := levenshtein.ComputeDistance(name, variant.String())
		if bestDistance == -1 || distance < bestDistance {
			best = variant
			bestDistance = distance
		}
	}

	if bestDistance > suggestionDistance {
		return 0, false
	}

	return best, true
}
