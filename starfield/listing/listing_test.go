package listing

import (
	goErrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthome-go/starfield/starfield/errors"
)

func TestAddAndString(t *testing.T) {
	program := New()
	program.Add(10, "GR")
	program.Add(20, "TS = %d", 40)
	program.Add(30, "DIM DX(%[1]d),DY(%[1]d)", 9)

	assert.Equal(t, 3, program.Len())
	assert.Equal(t, "10 GR\n20 TS = 40\n30 DIM DX(9),DY(9)\n", program.String())
	assert.NoError(t, program.Check())
}

func TestCheck(t *testing.T) {
	type test struct {
		Name    string
		Numbers []uint
		IsValid bool
	}

	tests := []test{
		{Name: "Empty", Numbers: nil, IsValid: true},
		{Name: "Increasing", Numbers: []uint{10, 20, 1000, 1005, 2200}, IsValid: true},
		{Name: "Duplicate", Numbers: []uint{10, 20, 20}, IsValid: false},
		{Name: "Decreasing", Numbers: []uint{10, 2200, 1000}, IsValid: false},
		{Name: "Maximum", Numbers: []uint{10, MaxLineNumber}, IsValid: true},
		{Name: "TooLarge", Numbers: []uint{10, MaxLineNumber + 1}, IsValid: false},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			program := New()
			for _, number := range test.Numbers {
				program.Add(number, "REM")
			}

			err := program.Check()
			if test.IsValid {
				assert.NoError(t, err)
				return
			}

			var sfErr *errors.Error
			require.ErrorAs(t, err, &sfErr)
			assert.Equal(t, errors.LayoutError, sfErr.Kind)
		})
	}
}

func TestParse(t *testing.T) {
	input := "10 GR\r\n\n20 TS = 40\n2260 I = I + 1 : IF I < 10 GOTO 2210\n"

	program, err := Parse(input)
	require.NoError(t, err)

	assert.Equal(t, []Line{
		{Number: 10, Text: "GR"},
		{Number: 20, Text: "TS = 40"},
		{Number: 2260, Text: "I = I + 1 : IF I < 10 GOTO 2210"},
	}, program.Lines)

	line, found := program.Find(20)
	assert.True(t, found)
	assert.Equal(t, "TS = 40", line.Text)

	_, found = program.Find(30)
	assert.False(t, found)
}

func TestParseRoundTrip(t *testing.T) {
	program := New()
	program.Add(1000, "DX(0) = %d", -14)
	program.Add(1005, "DY(0) = %d", 14)

	parsed, err := Parse(program.String())
	require.NoError(t, err)
	assert.Equal(t, program, parsed)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"GR", "ten GR", "-10 GR"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)

			var sfErr *errors.Error
			require.ErrorAs(t, err, &sfErr)
			assert.Equal(t, errors.LayoutError, sfErr.Kind)
			assert.True(t, strings.HasPrefix(sfErr.Message, "line 1:"))
		})
	}
}

var errClosed = goErrors.New("pipe closed")

type limitedWriter struct {
	written []string
	limit   int
}

func (self *limitedWriter) Write(p []byte) (int, error) {
	if len(self.written) >= self.limit {
		return 0, errClosed
	}
	self.written = append(self.written, string(p))
	return len(p), nil
}

func TestWriteToStopsAtFirstFailure(t *testing.T) {
	program := New()
	program.Add(10, "GR")
	program.Add(20, "TS = 40")
	program.Add(30, "N = 10")

	writer := &limitedWriter{limit: 2}
	n, err := program.WriteTo(writer)

	assert.Equal(t, int64(len("10 GR\n20 TS = 40\n")), n)
	assert.Equal(t, []string{"10 GR\n", "20 TS = 40\n"}, writer.written)

	var sfErr *errors.Error
	require.ErrorAs(t, err, &sfErr)
	assert.Equal(t, errors.OutputError, sfErr.Kind)
	assert.Equal(t, "could not write line 30", sfErr.Message)
	assert.ErrorIs(t, err, errClosed)
}
