package analysis

import (
	"fmt"
	"strings"
)

// Severity categorizes a hint.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityOptimize Severity = "optimize"
	SeverityInfo     Severity = "info"
)

// Hint is a generated advisory about how the document will fare once
// chunked. Hints are derived from a Result on demand and never stored.
type Hint struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// GenerateHints evaluates the fixed rule set over an analysis result. The
// rule order only affects display order. An empty list means no issues were
// detected. A nil result yields no hints.
func GenerateHints(res *Result, chunkSize int) []Hint {
	if res == nil {
		return nil
	}
	var hints []Hint

	firstChunk, later := 0, 0
	for _, e := range res.Entities {
		if e.ChunkIndex == 0 {
			firstChunk++
		} else {
			later++
		}
	}
	if later > firstChunk {
		hints = append(hints, Hint{
			Severity: SeverityWarning,
			Message: fmt.Sprintf(
				"Buried value proposition: %d entities land after the first chunk, past the highest-attention window.",
				later),
		})
	}

	var lowCount int
	var examples []string
	for _, e := range res.Entities {
		if !e.LowAttention {
			continue
		}
		lowCount++
		if len(examples) < 3 {
			examples = append(examples, e.Text)
		}
	}
	if lowCount > 0 {
		hints = append(hints, Hint{
			Severity: SeverityCritical,
			Message: fmt.Sprintf(
				"%d entities sit in low-attention zones (e.g. %s). Move key names toward chunk boundaries.",
				lowCount, strings.Join(examples, ", ")),
		})
	}

	long := 0
	for _, p := range res.Paragraphs {
		if p.ExceedsChunk {
			long++
		}
	}
	if long > 0 {
		hints = append(hints, Hint{
			Severity: SeverityWarning,
			Message: fmt.Sprintf(
				"%d paragraphs exceed the %d-token chunk size and will be split mid-thought.",
				long, chunkSize),
		})
	}

	if res.Efficiency == EfficiencyVerbose {
		hints = append(hints, Hint{
			Severity: SeverityOptimize,
			Message: fmt.Sprintf(
				"Token efficiency is verbose (%.2f words/token). Cut filler to pack more signal per chunk.",
				res.WordsPerToken),
		})
	}

	if len(res.Chunks) > 5 {
		hints = append(hints, Hint{
			Severity: SeverityInfo,
			Message: fmt.Sprintf(
				"Content spans %d chunks; the first and last chunks receive the highest attention.",
				len(res.Chunks)),
		})
	}

	if chunkSize > 120 {
		hints = append(hints, Hint{
			Severity: SeverityOptimize,
			Message:  "Chunk sizes above 120 tokens deepen the murky middle. The 90-120 range keeps more content near high-attention boundaries.",
		})
	}

	return hints
}
