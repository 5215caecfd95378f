package calibration_test

import (
	"testing"

	"github.com/go-advent/aoc2023/internal/calibration"
	"github.com/stretchr/testify/assert"
)

func TestReplaceSpelledOut(t *testing.T) {
	tt := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "word at start",
			text:     "two1nine",
			expected: "219",
		},
		{
			name:     "overlapping words",
			text:     "eightwothree",
			expected: "823",
		},
		{
			name:     "words between letters",
			text:     "abcone2threexyz",
			expected: "abc123xyz",
		},
		{
			name:     "overlap inside a word tail",
			text:     "xtwone3four",
			expected: "x2134",
		},
		{
			name:     "digits and words mixed",
			text:     "4nineeightseven2",
			expected: "49872",
		},
		{
			name:     "zero and overlap",
			text:     "zoneight234",
			expected: "z18234",
		},
		{
			name:     "word as prefix of a longer run",
			text:     "7pqrstsixteen",
			expected: "7pqrst6teen",
		},
		{
			name:     "repeated overlaps",
			text:     "eightjzqzhrllg1oneightfck",
			expected: "8jzqzhrllg118fck",
		},
		{
			name:     "no spelled words",
			text:     "treb7uchet",
			expected: "treb7uchet",
		},
		{
			name:     "empty string",
			text:     "",
			expected: "",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, calibration.ReplaceSpelledOut(tc.text))
		})
	}
}
