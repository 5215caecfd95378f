package day01

import (
	"flag"
	"fmt"

	"github.com/go-advent/aoc2023/internal/calibration"
	"github.com/go-advent/aoc2023/internal/input"
)

const defaultInputPath = "./input/day01.txt"

func Start() error {
	var (
		path   string
		output string
	)

	flag.StringVar(&path, "path", defaultInputPath, "path to input file")
	flag.StringVar(&path, "p", defaultInputPath, "path to input file")
	flag.StringVar(&output, "output", "", "file for output")
	flag.StringVar(&output, "o", "", "file for output")

	flag.Parse()

	if path == "" {
		return ErrEmptyInputPath{}
	}

	in, err := input.Load(path)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	part1, err := calibration.NewExtractor().Sum(in.Reader())
	if err != nil {
		return fmt.Errorf("sum calibration values: %w", err)
	}

	part2, err := calibration.NewSpelledExtractor().Sum(in.Reader())
	if err != nil {
		return fmt.Errorf("sum spelled calibration values: %w", err)
	}

	report := fmt.Sprintf("Part 1:\n%d\nPart 2:\n%d\n", part1.Sum, part2.Sum)

	if output != "" {
		if err := input.WriteFile(output, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		return nil
	}

	fmt.Print(report)

	return nil
}
