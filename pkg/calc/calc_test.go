package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Sums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "single number", input: "1", want: 1},
		{name: "another single number", input: "7", want: 7},
		{name: "two numbers", input: "1,2", want: 3},
		{name: "two larger numbers", input: "10,20", want: 30},
		{name: "many numbers", input: "1,2,3,4,5", want: 15},
		{name: "newline as delimiter", input: "1\n2,3", want: 6},
		{name: "trailing delimiter", input: "1,2,", want: 3},
		{name: "custom single delimiter", input: "//;\n1;2", want: 3},
		{name: "custom multi-char delimiter", input: "//[***]\n1***2***3", want: 6},
		{name: "multiple custom delimiters", input: "//[*][%]\n1*2%3", want: 6},
		{name: "multiple multi-char delimiters", input: "//[**][%%]\n1**2%%3", want: 6},
		{name: "custom delimiter with regexp metachars", input: "//[.+]\n1.+2.+3", want: 6},
		{name: "over 1000 ignored", input: "2,1001", want: 2},
		{name: "exactly 1000 included", input: "1000,1", want: 1001},
		{name: "mixed around the bound", input: "1000,1001,2", want: 1002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Evaluate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Negatives(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		values  []int
	}{
		{
			name:    "single negative",
			input:   "1,-2,3",
			message: "negatives not allowed: -2",
			values:  []int{-2},
		},
		{
			name:    "all negatives in encounter order",
			input:   "-1,2,-3,-4",
			message: "negatives not allowed: -1, -3, -4",
			values:  []int{-1, -3, -4},
		},
		{
			name:    "large negative still reported",
			input:   "1,-2000",
			message: "negatives not allowed: -2000",
			values:  []int{-2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Evaluate(tt.input)
			require.Error(t, err)

			var negErr *NegativeError
			require.ErrorAs(t, err, &negErr)
			assert.Equal(t, tt.values, negErr.Values)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestEvaluate_BadToken(t *testing.T) {
	_, err := New().Evaluate("1,a,2")
	require.Error(t, err)

	var fmtErr *FormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, "a", fmtErr.Token)
}

func TestEvaluate_UnterminatedHeader(t *testing.T) {
	_, err := New().Evaluate("//;1;2")
	assert.ErrorIs(t, err, ErrUnterminatedHeader)
}

func TestEvaluate_EmptyHeader(t *testing.T) {
	_, err := New().Evaluate("//\n1,2")
	assert.ErrorIs(t, err, ErrEmptyHeader)
}

func TestEvaluate_Idempotent(t *testing.T) {
	c := New()

	first, err := c.Evaluate("1,2,3")
	require.NoError(t, err)

	second, err := c.Evaluate("1,2,3")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalledCount(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.CalledCount())

	inputs := []string{"", "1,2", "1,-2", "not a number", "//;1"}
	for _, in := range inputs {
		_, _ = c.Evaluate(in)
	}

	// Failing calls count too; the counter moves before anything can go
	// wrong.
	assert.Equal(t, len(inputs), c.CalledCount())
}

func TestEvaluate_CounterScopedPerInstance(t *testing.T) {
	a := New()
	b := New()

	_, err := a.Evaluate("1")
	require.NoError(t, err)

	assert.Equal(t, 1, a.CalledCount())
	assert.Equal(t, 0, b.CalledCount())
}

func TestEvaluate_NoPartialSumOnError(t *testing.T) {
	c := New()

	sum, err := c.Evaluate("1,-2,3")
	require.Error(t, err)
	assert.Zero(t, sum)

	var negErr *NegativeError
	assert.True(t, errors.As(err, &negErr))
}
