package internal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"quantum-lab/codec"
	"quantum-lab/domain"
	"quantum-lab/observability"
)

const rule = "--------------------------------------------------"

// Renderer writes the human-facing demo output. Everything here is
// illustrative; none of it is part of the codec contract.
type Renderer struct {
	out     io.Writer
	colours bool
}

func NewRenderer(out io.Writer, colours bool) *Renderer {
	return &Renderer{out: out, colours: colours}
}

// Header prints a boxed section title.
func (r *Renderer) Header(title string) {
	line := strings.Repeat("=", 50)
	fmt.Fprintf(r.out, "\n%s\n%s\n%s\n\n", line, r.paint(title), line)
}

func (r *Renderer) paint(s string) string {
	if !r.colours {
		return s
	}
	return color.New(color.BgBlack, color.FgGreen).Render(s)
}

// Chunk prints the progress lines for one processed chunk.
func (r *Renderer) Chunk(index int, cr codec.ChunkResult) {
	fmt.Fprintf(r.out, "📦 Processing chunk %d: %q\n", index+1, cr.Chunk)
	fmt.Fprintf(r.out, "   Binary representation: %s\n", cr.Bits)
	fmt.Fprintf(r.out, "   Quantum measurement: %s\n\n", cr.Measured)
}

// Circuits prints every chunk circuit drawing.
func (r *Renderer) Circuits(chunks []codec.ChunkResult) {
	fmt.Fprintln(r.out, "🔋 Quantum Circuits Generated:")
	fmt.Fprintln(r.out, rule)
	for i, cr := range chunks {
		fmt.Fprintf(r.out, "\n🔷 Circuit for chunk %d:\n", i+1)
		fmt.Fprint(r.out, cr.Circuit.Draw())
		fmt.Fprintln(r.out, rule)
	}
}

// Summary prints the round-trip results table.
func (r *Renderer) Summary(original, decoded, language string, chunks int) {
	fmt.Fprintln(r.out, "\n📊 Results Summary:")

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.Append([]string{"📝 Original message", fmt.Sprintf("%q", original)})
	table.Append([]string{"🎯 Decoded message", fmt.Sprintf("%q", decoded)})
	table.Append([]string{"📦 Chunks processed", fmt.Sprintf("%d", chunks)})
	if language != "" {
		table.Append([]string{"🌍 Detected language", language})
	}
	table.Render()
}

// Histogram prints the measurement counts as horizontal bars, widest
// outcome scaled to 40 characters.
func (r *Renderer) Histogram(counts domain.Counts, shots int) {
	outcomes := make([]string, 0, len(counts))
	peak := 0
	for outcome, n := range counts {
		outcomes = append(outcomes, outcome)
		if n > peak {
			peak = n
		}
	}
	sort.Strings(outcomes)

	fmt.Fprintf(r.out, "\n📈 Measurement results over %d shots:\n", shots)
	for _, outcome := range outcomes {
		n := counts[outcome]
		width := 0
		if peak > 0 {
			width = n * 40 / peak
		}
		bar := strings.Repeat("█", width)
		if r.colours {
			bar = color.New(color.FgGreen).Render(bar)
		}
		fmt.Fprintf(r.out, "  |%s⟩ %5d %s\n", outcome, n, bar)
	}
}

// HistogramText renders the histogram without colour for the report file.
func HistogramText(counts domain.Counts, shots int) string {
	var b strings.Builder
	plain := NewRenderer(&b, false)
	plain.Histogram(counts, shots)
	return b.String()
}

// Stats prints the simulator activity counters.
func (r *Renderer) Stats(snapshot observability.Snapshot) {
	fmt.Fprintf(r.out, "\n🔬 Simulator activity: %d circuits, %d gates, %d shots, peak %d qubits, %s total\n",
		snapshot.CircuitsRun,
		snapshot.GatesApplied,
		snapshot.ShotsSampled,
		snapshot.QubitsPeak,
		snapshot.TotalElapsed,
	)
}
