package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthome-go/starfield/starfield/errors"
)

func TestParseVariant(t *testing.T) {
	type test struct {
		Input    string
		Expected Variant
	}

	tests := []test{
		{Input: "shared", Expected: SharedPhaseVariant},
		{Input: "timer", Expected: TimerPhaseVariant},
		{Input: "param", Expected: ParamPhaseVariant},
		{Input: "TIMER", Expected: TimerPhaseVariant},
		{Input: "  Shared ", Expected: SharedPhaseVariant},
		{Input: "PaRaM", Expected: ParamPhaseVariant},
	}

	for _, test := range tests {
		t.Run(test.Input, func(t *testing.T) {
			variant, err := ParseVariant(test.Input)
			require.NoError(t, err)
			assert.Equal(t, test.Expected, variant)
		})
	}
}

func TestParseVariantSuggestion(t *testing.T) {
	type test struct {
		Input   string
		Message string
	}

	tests := []test{
		{Input: "tmer", Message: "did you mean `timer`?"},
		{Input: "parm", Message: "did you mean `param`?"},
		{Input: "shard", Message: "did you mean `shared`?"},
		{Input: "xyzzyq", Message: "valid variants are shared, timer, param"},
	}

	for _, test := range tests {
		t.Run(test.Input, func(t *testing.T) {
			_, err := ParseVariant(test.Input)

			var sfErr *errors.Error
			require.ErrorAs(t, err, &sfErr)
			assert.Equal(t, errors.VariantError, sfErr.Kind)
			assert.Contains(t, sfErr.Message, test.Message)
		})
	}
}

func TestVariantNamesRoundTrip(t *testing.T) {
	for _, variant := range Variants {
		parsed, err := ParseVariant(variant.String())
		require.NoError(t, err)
		assert.Equal(t, variant, parsed)
		assert.NotEmpty(t, variant.Description())
	}

	assert.False(t, SharedPhaseVariant.HasPhase())
	assert.True(t, TimerPhaseVariant.HasPhase())
	assert.True(t, ParamPhaseVariant.HasPhase())
}
