package listing

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smarthome-go/starfield/starfield/errors"
)

// Highest line number accepted by Applesoft BASIC.
const MaxLineNumber = 63999

type Line struct {
	Number uint
	Text   string
}

func (self Line) String() string {
	return fmt.Sprintf("%d %s", self.Number, self.Text)
}

// Listing is a numbered BASIC program in the order it is going to be printed.
type Listing struct {
	Lines []Line
}

func New() Listing {
	return Listing{
		Lines: make([]Line, 0),
	}
}

func (self *Listing) Add(number uint, format string, args ...any) {
	self.Lines = append(self.Lines, Line{
		Number: number,
		Text:   fmt.Sprintf(format, args...),
	})
}

func (self Listing) Len() int {
	return len(self.Lines)
}

// Check reports the first line whose number is out of range or does not exceed its predecessor.
func (self Listing) Check() error {
	for idx, line := range self.Lines {
		if line.Number > MaxLineNumber {
			return errors.NewError(
				fmt.Sprintf("line number %d exceeds the maximum of %d", line.Number, MaxLineNumber),
				errors.LayoutError,
			)
		}

		if idx == 0 {
			continue
		}

		prev := self.Lines[idx-1]
		if line.Number <= prev.Number {
			return errors.NewError(
				fmt.Sprintf("line number %d follows %d", line.Number, prev.Number),
				errors.LayoutError,
			)
		}
	}

	return nil
}

func (self Listing) String() string {
	var builder strings.Builder
	for _, line := range self.Lines {
		builder.WriteString(line.String())
		builder.WriteByte('\n')
	}
	return builder.String()
}

// WriteTo writes the listing line by line and stops at the first failed write.
func (self Listing) WriteTo(writer io.Writer) (int64, error) {
	var written int64 = 0

	for _, line := range self.Lines {
		n, err := io.WriteString(writer, line.String()+"\n")
		written += int64(n)
		if err != nil {
			return written, errors.Wrap(
				err,
				fmt.Sprintf("could not write line %d", line.Number),
				errors.OutputError,
			)
		}
	}

	return written, nil
}

// Parse reads a listing as printed by `String`.
// Blank lines are skipped, every other line must start with its line number.
func Parse(program string) (Listing, error) {
	output := New()

	for idx, raw := range strings.Split(program, "\n") {
		raw = strings.TrimRight(raw, "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		numberStr, text, found := strings.Cut(raw, " ")
		if !found {
			return Listing{}, errors.NewError(
				fmt.Sprintf("line %d: expected `<number> <statement>`, found `%s`", idx+1, raw),
				errors.LayoutError,
			)
		}

		number, err := strconv.ParseUint(numberStr, 10, 32)
		if err != nil {
			return Listing{}, errors.Wrap(
				err,
				fmt.Sprintf("line %d: invalid line number `%s`", idx+1, numberStr),
				errors.LayoutError,
			)
		}

		output.Lines = append(output.Lines, Line{
			Number: uint(number),
			Text:   text,
		})
	}

	return output, nil
}

// Find returns the line with the given number.
func (self Listing) Find(number uint) (Line, bool) {
	for _, line := range self.Lines {
		if line.Number == number {
			return line, true
		}
	}
	return Line{}, false
}
