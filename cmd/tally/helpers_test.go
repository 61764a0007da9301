package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no escapes", in: "1,2,3", want: "1,2,3"},
		{name: "newline", in: `//;\n1;2`, want: "//;\n1;2"},
		{name: "tab", in: `1\t2`, want: "1\t2"},
		{name: "escaped backslash", in: `1\\n2`, want: `1\n2`},
		{name: "unknown escape kept", in: `1\x2`, want: `1\x2`},
		{name: "trailing backslash kept", in: `1\`, want: `1\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeEscapes(tt.in))
		})
	}
}

func TestDisplayInput(t *testing.T) {
	assert.Equal(t, `//;\n1;2`, displayInput("//;\n1;2"))
	assert.Equal(t, `1\t2`, displayInput("1\t2"))
	assert.Equal(t, "1,2", displayInput("1,2"))
}

func TestPadInput(t *testing.T) {
	assert.Equal(t, "ab   ", padInput("ab", 5))
	assert.Equal(t, "abcdef", padInput("abcdef", 5))
}

func TestFormatResultLine_Plain(t *testing.T) {
	st := newStyles(false)

	line := formatResultLine(st, "1,2", 3, 3, nil)
	assert.Equal(t, "1,2  = 3", line)

	line = formatResultLine(st, "1,-2", 4, 0, assert.AnError)
	assert.Contains(t, line, "error:")
	assert.Contains(t, line, assert.AnError.Error())
}
