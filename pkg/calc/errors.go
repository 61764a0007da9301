package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Structural header errors.
var (
	// ErrUnterminatedHeader is returned when an input starts with the "//"
	// delimiter marker but no newline terminates the header.
	ErrUnterminatedHeader = errors.New("calc: delimiter header is missing its terminating newline")

	// ErrEmptyHeader is returned when a header is present but declares no
	// usable delimiter (empty body, or brackets with no closed group).
	ErrEmptyHeader = errors.New("calc: delimiter header declares no delimiters")
)

// FormatError reports a token that is not a valid base-10 integer.
type FormatError struct {
	Token string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("calc: %q is not a number", e.Token)
}

// NegativeError reports every negative number found in the input, in
// encounter order.
type NegativeError struct {
	Values []int
}

func (e *NegativeError) Error() string {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = strconv.Itoa(v)
	}

	return "negatives not allowed: " + strings.Join(parts, ", ")
}
