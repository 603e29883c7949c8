package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"quantum-lab/codec"
	"quantum-lab/domain"
)

func TestRenderer_Chunk(t *testing.T) {
	req := require.New(t)

	var out strings.Builder
	NewRenderer(&out, false).Chunk(0, codec.ChunkResult{
		Chunk:    "He",
		Bits:     "0100100001100101",
		Measured: "1010011000010010",
	})

	req.Contains(out.String(), `chunk 1: "He"`)
	req.Contains(out.String(), "0100100001100101")
	req.Contains(out.String(), "1010011000010010")
}

func TestRenderer_Summary(t *testing.T) {
	req := require.New(t)

	var out strings.Builder
	NewRenderer(&out, false).Summary("Hi", "Hi", "English (en)", 1)

	req.Contains(out.String(), `"Hi"`)
	req.Contains(out.String(), "English (en)")
	req.Contains(out.String(), "1")
}

func TestHistogramText(t *testing.T) {
	req := require.New(t)

	report := HistogramText(domain.Counts{"0": 480, "1": 520}, 1000)
	req.Contains(report, "|0⟩")
	req.Contains(report, "|1⟩")
	req.Contains(report, "480")
	req.Contains(report, "520")
	// Outcomes render in register order, zero first.
	req.Less(strings.Index(report, "|0⟩"), strings.Index(report, "|1⟩"))
}

func TestParseNumbers(t *testing.T) {
	req := require.New(t)

	numbers, err := ParseNumbers([]string{"4", "-2", "47"})
	req.NoError(err)
	req.Equal([]int{4, -2, 47}, numbers)

	_, err = ParseNumbers([]string{"4", "two"})
	req.Error(err)
}
