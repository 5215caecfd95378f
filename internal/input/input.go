package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Input holds the lines of a puzzle input, loaded fully before any
// processing starts.
type Input struct {
	lines []string
}

func Load(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	lines := make([]string, 0)

	scan := bufio.NewScanner(f)
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}

	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	return &Input{
		lines: lines,
	}, nil
}

func FromLines(lines []string) *Input {
	copied := make([]string, len(lines))
	copy(copied, lines)

	return &Input{
		lines: copied,
	}
}

func (in *Input) Lines() []string {
	return in.lines
}

// Reader returns a fresh reader over the lines, so the same Input can be
// fed to several passes.
func (in *Input) Reader() io.Reader {
	return strings.NewReader(strings.Join(in.lines, "\n"))
}

func WriteFile(path, data string) error {
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	return string(data), nil
}
