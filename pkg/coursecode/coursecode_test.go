package coursecode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty text", input: "", expected: nil},
		{name: "no codes", input: "no course mentions here", expected: nil},
		{name: "single code", input: "Take CSCI 1100 first.", expected: []string{"CSCI 1100"}},
		{
			name:     "duplicates collapse sorted",
			input:    "MATH 2010 before CSCI 1100 and CSCI 1100 again",
			expected: []string{"CSCI 1100", "MATH 2010"},
		},
		{
			name:     "trailing letter variant",
			input:    "Honors section ITWS 4100H is separate",
			expected: []string{"ITWS 4100H"},
		},
		{
			name:     "three letter department",
			input:    "IHSS 1200 and ART 2040 both count",
			expected: []string{"ART 2040", "IHSS 1200"},
		},
		{name: "lowercase ignored", input: "csci 1100 is not a code", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Find(tt.input))
		})
	}
}

func TestFind_Idempotent(t *testing.T) {
	text := "CSCI 1100, MATH 1010, CSCI 1100"
	first := Find(text)
	second := Find(text)
	require.Equal(t, first, second)
}
