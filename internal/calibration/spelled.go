package calibration

import "strings"

type spelledDigit struct {
	word  string
	digit string
}

// spelledDigits maps spelled-out numbers to their digit characters.
// Order-only table, built once and never mutated.
var spelledDigits = []spelledDigit{
	{word: "zero", digit: "0"},
	{word: "one", digit: "1"},
	{word: "two", digit: "2"},
	{word: "three", digit: "3"},
	{word: "four", digit: "4"},
	{word: "five", digit: "5"},
	{word: "six", digit: "6"},
	{word: "seven", digit: "7"},
	{word: "eight", digit: "8"},
	{word: "nine", digit: "9"},
}

func spelledAt(text string, index int) (spelledDigit, bool) {
	for _, sd := range spelledDigits {
		if strings.HasPrefix(text[index:], sd.word) {
			return sd, true
		}
	}

	return spelledDigit{}, false
}

// ReplaceSpelledOut rewrites every spelled-out number in text to its digit
// character. Matching is purely positional: a word starting at any index is
// recognized, even inside the tail of a previous match, so overlapping pairs
// like "oneight" become "18" and "eightwo" become "82". A matched word emits
// one digit and suppresses its remaining literal characters; everything else
// passes through unchanged.
func ReplaceSpelledOut(text string) string {
	var result strings.Builder

	skip := 0

	for i := 0; i < len(text); i++ {
		if sd, ok := spelledAt(text, i); ok {
			result.WriteString(sd.digit)
			skip = len(sd.word) - 1

			continue
		}

		if skip > 0 {
			skip--

			continue
		}

		result.WriteByte(text[i])
	}

	return result.String()
}
