package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/chunklens/chunklens/internal/analysis"
)

// HeatSamples is how many attention samples each chunk's heat strip carries.
const HeatSamples = 20

var (
	heatHigh = color.New(color.FgGreen)
	heatMid  = color.New(color.FgYellow)
	heatLow  = color.New(color.FgRed)

	severityColors = map[analysis.Severity]*color.Color{
		analysis.SeverityCritical: color.New(color.FgRed, color.Bold),
		analysis.SeverityWarning:  color.New(color.FgYellow),
		analysis.SeverityOptimize: color.New(color.FgCyan),
		analysis.SeverityInfo:     color.New(color.FgBlue),
	}

	efficiencyColors = map[string]*color.Color{
		analysis.EfficiencyOptimal:    color.New(color.FgGreen),
		analysis.EfficiencyAcceptable: color.New(color.FgYellow),
		analysis.EfficiencyVerbose:    color.New(color.FgRed),
	}
)

// HeatStrip renders attention samples as a colored block bar: green for high
// attention, yellow for acceptable, red for the murky middle.
func HeatStrip(samples []float64) string {
	var b strings.Builder
	for _, score := range samples {
		switch {
		case score >= 0.80:
			b.WriteString(heatHigh.Sprint("█"))
		case score >= analysis.LowAttentionThreshold:
			b.WriteString(heatMid.Sprint("█"))
		default:
			b.WriteString(heatLow.Sprint("█"))
		}
	}
	return b.String()
}

// RenderTokenCounts writes the per-family token counts, variance, and
// efficiency summary.
func RenderTokenCounts(w io.Writer, res *analysis.Result) {
	fmt.Fprintf(w, "Tokens    GPT %d | Claude %d | Gemini %d  (variance %d%%)\n",
		res.TokenCounts.GPT, res.TokenCounts.Claude, res.TokenCounts.Gemini, res.VariancePct)
	label := res.Efficiency
	if c, ok := efficiencyColors[res.Efficiency]; ok {
		label = c.Sprint(res.Efficiency)
	}
	fmt.Fprintf(w, "Words     %d  (%.2f words/token, %s)\n", res.WordCount, res.WordsPerToken, label)
}

// RenderParagraphs writes one line per paragraph with its token cost.
func RenderParagraphs(w io.Writer, res *analysis.Result) {
	fmt.Fprintf(w, "Paragraphs (%d):\n", len(res.Paragraphs))
	for _, p := range res.Paragraphs {
		marker := " "
		if p.ExceedsChunk {
			marker = heatLow.Sprint("!")
		}
		fmt.Fprintf(w, "  %s #%-3d %4d tokens, %d chunk(s)  %s\n",
			marker, p.Index, p.TokenCount, p.ChunksRequired, excerpt(p.Text, 48))
	}
}

// RenderChunks writes one line per chunk with its attention heat strip.
func RenderChunks(w io.Writer, res *analysis.Result) {
	fmt.Fprintf(w, "Chunks (%d @ %d tokens):\n", len(res.Chunks), res.ChunkSize)
	for _, c := range res.Chunks {
		fmt.Fprintf(w, "  #%-3d tokens %5d-%-5d %s %s\n",
			c.Index, c.StartToken, c.EndToken, HeatStrip(c.HeatStrip(HeatSamples)), excerpt(c.Text, 40))
	}
}

// RenderEntities writes one line per detected entity with its placement and
// attention score.
func RenderEntities(w io.Writer, res *analysis.Result) {
	fmt.Fprintf(w, "Entities (%d):\n", len(res.Entities))
	for _, e := range res.Entities {
		score := fmt.Sprintf("%.2f", e.Attention)
		if e.LowAttention {
			score = heatLow.Sprintf("%.2f low", e.Attention)
		}
		fmt.Fprintf(w, "  %-24q chunk %d pos %d  attention %s\n",
			e.Text, e.ChunkIndex, e.ChunkPos, score)
	}
}

// RenderHints writes the hint list, or a confirmation when it is empty.
func RenderHints(w io.Writer, hints []analysis.Hint) {
	if len(hints) == 0 {
		fmt.Fprintln(w, heatHigh.Sprint("✓")+" No issues detected")
		return
	}
	fmt.Fprintf(w, "Hints (%d):\n", len(hints))
	for _, h := range hints {
		tag := string(h.Severity)
		if c, ok := severityColors[h.Severity]; ok {
			tag = c.Sprint(tag)
		}
		fmt.Fprintf(w, "  [%s] %s\n", tag, h.Message)
	}
}

// RenderResult writes the full text report for one analysis.
func RenderResult(w io.Writer, res *analysis.Result, hints []analysis.Hint) {
	RenderTokenCounts(w, res)
	fmt.Fprintln(w)
	RenderParagraphs(w, res)
	fmt.Fprintln(w)
	RenderChunks(w, res)
	fmt.Fprintln(w)
	RenderEntities(w, res)
	fmt.Fprintln(w)
	RenderHints(w, hints)
}

// excerpt flattens and truncates text for single-line display.
func excerpt(text string, max int) string {
	flat := strings.Join(strings.Fields(text), " ")
	runes := []rune(flat)
	if len(runes) <= max {
		return flat
	}
	return string(runes[:max]) + "…"
}
