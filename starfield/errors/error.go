package errors

import "fmt"

type ErrorKind uint8

const (
	ParameterError ErrorKind = iota
	VariantError
	LayoutError
	OutputError
)

func (self ErrorKind) String() string {
	switch self {
	case ParameterError:
		return "ParameterError"
	case VariantError:
		return "VariantError"
	case LayoutError:
		return "LayoutError"
	case OutputError:
		return "OutputError"
	default:
		panic("A new error kind was added without updating this code")
	}
}

type Error struct {
	Kind    ErrorKind
	Message string
	// Underlying cause, if any (for instance the writer's error)
	Cause error
}

func NewError(message string, kind ErrorKind) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   nil,
	}
}

func Wrap(cause error, message string, kind ErrorKind) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func (self *Error) Error() string {
	if self.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", self.Kind, self.Message, self.Cause.Error())
	}
	return fmt.Sprintf("%s: %s", self.Kind, self.Message)
}

func (self *Error) Unwrap() error {
	return self.Cause
}
