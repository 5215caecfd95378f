package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-advent/aoc2023/internal/application/day01"
)

func main() {
	if err := day01.Start(); err != nil {
		slog.Error(fmt.Sprintf("day01.Start(): %s", err))
		os.Exit(1)
	}
}
