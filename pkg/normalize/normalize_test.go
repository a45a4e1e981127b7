package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCredits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "plain integer", input: "4", expected: 4},
		{name: "range with to", input: "1 to 4", expected: 4},
		{name: "range with dash", input: "1-4", expected: 4},
		{name: "disjunction", input: "0 or 4", expected: 4},
		{name: "no digits", input: "Variable", expected: 0},
		{name: "empty", input: "", expected: 0},
		{name: "whitespace only", input: "   ", expected: 0},
		{name: "digits in prose", input: "3 credits per term", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseCredits(tt.input))
		})
	}
}

func TestParseSemesters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty defaults", input: "", expected: []string{"Fall", "Spring"}},
		{name: "yearly expands", input: "Yearly", expected: []string{"Fall", "Spring"}},
		{name: "fall only", input: "Fall term annually", expected: []string{"Fall"}},
		{name: "spring only", input: "Spring", expected: []string{"Spring"}},
		{name: "all three", input: "Fall, Spring, and Summer", expected: []string{"Fall", "Spring", "Summer"}},
		{name: "unmatched defaults", input: "Upon availability of instructor", expected: []string{"Fall", "Spring"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseSemesters(tt.input))
		})
	}
}

// The result is never empty, whatever the input looks like.
func TestParseSemesters_NeverEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "garbage", "TBD", "Yearly"} {
		require.NotEmpty(t, ParseSemesters(input), "input %q", input)
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: []string{}},
		{name: "none listed", input: "None listed", expected: []string{}},
		{name: "single item", input: "CSCI 1100", expected: []string{"CSCI 1100"}},
		{name: "comma list trims", input: "CSCI 1100 , MATH 1010", expected: []string{"CSCI 1100", "MATH 1010"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseList(tt.input))
		})
	}
}
