package internal

import (
	"fmt"
	"strconv"
)

// Config gathers the environment knobs shared by the demo binaries.
type Config struct {
	LogLevel   string `env:"LOG_LEVEL,default=info"`
	Seed       int64  `env:"SEED"`
	Colours    bool   `env:"COLOURS,default=true"`
	ChunkSize  int    `env:"CHUNK_SIZE,default=3"`
	Shots      int    `env:"SHOTS,default=1000"`
	ReportPath string `env:"REPORT_PATH,default=quantum_results.txt"`
}

// ParseNumbers converts CLI arguments into the list to sort.
func ParseNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("arguments must be integers, got %q", arg)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
