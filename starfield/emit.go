package starfield

import (
	"fmt"
	"io"

	"github.com/smarthome-go/starfield/starfield/errors"
	"github.com/smarthome-go/starfield/starfield/listing"
)

// Build turns generated stars into the BASIC program of the given variant.
func Build(variant Variant, params Params, stars []Star) (listing.Listing, error) {
	if err := params.Validate(); err != nil {
		return listing.Listing{}, err
	}

	if len(stars) != params.Stars {
		return listing.Listing{}, errors.NewError(
			fmt.Sprintf("expected %d stars, got %d", params.Stars, len(stars)),
			errors.ParameterError,
		)
	}

	var program listing.Listing

	switch variant {
	case SharedPhaseVariant:
		program = buildShared(params, stars)
	case TimerPhaseVariant:
		program = buildTimer(params, stars)
	case ParamPhaseVariant:
		program = buildParam(params, stars)
	default:
		panic("A new variant was introduced without updating this code")
	}

	if err := program.Check(); err != nil {
		return listing.Listing{}, err
	}

	return program, nil
}

// Emit generates stars from `source` and writes the resulting program to `writer`.
// Nothing is written if the parameters are invalid.
func Emit(writer io.Writer, variant Variant, params Params, source Source) ([]Star, error) {
	stars, err := GenerateStars(params, source, variant.HasPhase())
	if err != nil {
		return nil, err
	}

	program, err := Build(variant, params, stars)
	if err != nil {
		return nil, err
	}

	if _, err := program.WriteTo(writer); err != nil {
		return nil, err
	}

	return stars, nil
}

//
// Shared phase
//

func buildShared(params Params, stars []Star) listing.Listing {
	program := listing.New()
	last := params.Stars - 1

	program.Add(10, "GR")
	program.Add(30, "DIM DX(%[1]d),DY(%[1]d),C(%[1]d),X(%[1]d),Y(%[1]d)", last)

	for i, star := range stars {
		program.Add(initLine(i, dxSuffix), "DX(%d) = %d", i, star.DX)
		program.Add(initLine(i, dySuffix), "DY(%d) = %d", i, star.DY)
		program.Add(initLine(i, colorSuffix), "C(%d) = %d", i, star.Color)
	}

	start := footerLine(params.Stars)
	program.Add(start, "FOR T = 0 TO %d", params.Timer-1)
	program.Add(start+10, "FOR I = 0 TO %d", last)
	program.Add(start+20, "OX = X(I) : OY = Y(I)")
	program.Add(start+30, "X(I) = %d + DX(I) * T / %d", Center, params.Timer)
	program.Add(start+40, "Y(I) = %d + DY(I) * T / %d", Center, params.Timer)
	program.Add(start+50, "COLOR=0 : PLOT OX, OY")
	program.Add(start+60, "COLOR=C(I) : PLOT X(I), Y(I)")
	program.Add(start+70, "NEXT I")
	program.Add(start+80, "NEXT T")
	program.Add(start+100, "GOTO %d", start)

	return program
}

//
// Per-star phase, literal star count
//

func buildTimer(params Params, stars []Star) listing.Listing {
	program := listing.New()

	program.Add(10, "GR")
	program.Add(20, "TS = %d", params.Timer)
	program.Add(30, "DIM DX(%[1]d),DY(%[1]d),C(%[1]d),X(%[1]d),Y(%[1]d),T(%[1]d)", params.Stars-1)

	addPhaseInits(&program, stars)

	start := footerLine(params.Stars)
	program.Add(start, "I = 0")
	program.Add(start+10, "OX = X(I) : OY = Y(I)")
	program.Add(start+20, "X(I) = %d + DX(I) * T(I) / %d", Center, params.Timer)
	program.Add(start+30, "Y(I) = %d + DY(I) * T(I) / %d", Center, params.Timer)
	program.Add(start+35, "T(I) = T(I) + 1 : IF T(I) = TS THEN T(I) = 0")
	program.Add(start+40, "COLOR=0 : PLOT OX, OY")
	program.Add(start+50, "COLOR=C(I) : PLOT X(I), Y(I)")
	program.Add(start+60, "I = I + 1 : IF I < %d GOTO %d", params.Stars, start+10)
	program.Add(start+100, "GOTO %d", start)

	return program
}

//
// Per-star phase, star count in `N`
//

func buildParam(params Params, stars []Star) listing.Listing {
	program := listing.New()

	program.Add(10, "GR")
	program.Add(20, "TS = %d", params.Timer)
	program.Add(25, "N = %d", params.Stars)
	program.Add(30, "DIM DX(N - 1),DY(N - 1),C(N - 1),X(N - 1),Y(N - 1),T(N - 1)")

	addPhaseInits(&program, stars)

	start := footerLine(params.Stars)
	program.Add(start, "I = 0")
	program.Add(start+10, "OX = X(I) : OY = Y(I)")
	program.Add(start+20, "X(I) = %d + DX(I) * T(I) / TS", Center)
	program.Add(start+30, "Y(I) = %d + DY(I) * T(I) / TS", Center)
	program.Add(start+35, "T(I) = T(I) + 1 : IF T(I) = TS THEN T(I) = 0")
	program.Add(start+40, "COLOR=0 : PLOT OX, OY")
	program.Add(start+50, "COLOR=C(I) : PLOT X(I), Y(I)")
	program.Add(start+60, "I = I + 1 : IF I < N GOTO %d", start+10)
	program.Add(start+100, "GOTO %d", start)

	return program
}

func addPhaseInits(program *listing.Listing, stars []Star) {
	for i, star := range stars {
		program.Add(initLine(i, dxSuffix), "DX(%d) = %d", i, star.DX)
		program.Add(initLine(i, dySuffix), "DY(%d) = %d", i, star.DY)
		program.Add(initLine(i, colorSuffix), "C(%d) = %d", i, star.Color)
		program.Add(initLine(i, phaseSuffix), "T(%d) = %d", i, star.Phase)
	}
}
