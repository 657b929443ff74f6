package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single sentence",
			input:    "Just one sentence here.",
			expected: []string{"Just one sentence here."},
		},
		{
			name:     "three terminators",
			input:    "First one. Second one! Third one?",
			expected: []string{"First one.", "Second one!", "Third one?"},
		},
		{
			name:     "whitespace run consumed",
			input:    "First.   \tSecond.",
			expected: []string{"First.", "Second."},
		},
		{
			name:     "terminator without whitespace does not split",
			input:    "Version 1.2 shipped on time.",
			expected: []string{"Version 1.2 shipped on time."},
		},
		{
			name:     "no terminator",
			input:    "a fragment without an ending",
			expected: []string{"a fragment without an ending"},
		},
		{
			name:     "trailing whitespace dropped",
			input:    "Ends here. ",
			expected: []string{"Ends here."},
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "unicode text",
			input:    "Café crème. Naïve façade.",
			expected: []string{"Café crème.", "Naïve façade."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.input))
		})
	}
}

func TestWordsAndCount(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Words("  a \n b\tc "))
	assert.Equal(t, 3, Count("  a \n b\tc "))
	assert.Equal(t, 0, Count(""))
}
