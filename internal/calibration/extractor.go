package calibration

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-advent/aoc2023/internal/domain"
	"golang.org/x/sync/errgroup"
)

func filterDigits(text string) string {
	var digits strings.Builder

	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}

// firstAndLast keeps the first and last character of text. A single
// character is used for both positions; an empty text stays empty.
func firstAndLast(text string) string {
	if text == "" {
		return ""
	}

	return string(text[0]) + string(text[len(text)-1])
}

// Extractor computes calibration values: the two-digit number formed by the
// first and last digit of each line, optionally after spelled-out numbers
// have been rewritten to digits.
type Extractor struct {
	normalizeSpelled bool
}

func NewExtractor() *Extractor {
	return &Extractor{
		normalizeSpelled: false,
	}
}

func NewSpelledExtractor() *Extractor {
	return &Extractor{
		normalizeSpelled: true,
	}
}

// Value returns the calibration value of a single line. The second return
// is false when the line holds no digits; such lines contribute nothing.
func (e *Extractor) Value(text string) (int, bool) {
	if e.normalizeSpelled {
		text = ReplaceSpelledOut(text)
	}

	pair := firstAndLast(filterDigits(text))
	if pair == "" {
		return 0, false
	}

	value, err := strconv.Atoi(pair)
	if err != nil {
		return 0, false
	}

	return value, true
}

func (e *Extractor) processLines(lines <-chan line, extractData *data) error {
	for curLine := range lines {
		value, ok := e.Value(curLine.text)
		if !ok {
			extractData.processEmpty()

			continue
		}

		extractData.processValue(value)
	}

	return nil
}

const numberOfGoroutines = 5

// Sum reads newline-delimited lines from in and returns the total of their
// calibration values. Lines are independent, so they are spread over a fixed
// pool of workers; the sum is commutative, so ordering does not matter.
func (e *Extractor) Sum(in io.Reader) (domain.Summary, error) {
	extractData := newData()
	linesChan := make(chan line)

	eg := errgroup.Group{}

	eg.Go(func() error {
		defer close(linesChan)

		lineNumber := 1

		scan := bufio.NewScanner(in)
		for scan.Scan() {
			linesChan <- newLine(scan.Text(), lineNumber)

			lineNumber++
		}

		if err := scan.Err(); err != nil {
			return fmt.Errorf("read lines: %w", err)
		}

		return nil
	})

	for i := 0; i < numberOfGoroutines; i++ {
		eg.Go(func() error {
			return e.processLines(linesChan, &extractData)
		})
	}

	if err := eg.Wait(); err != nil {
		return domain.Summary{}, fmt.Errorf("eg.Wait(): %w", err)
	}

	return domain.NewSummary(extractData.totalLines, extractData.sum), nil
}
