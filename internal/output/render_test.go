package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/chunklens/chunklens/internal/analysis"
)

func init() {
	// Keep assertions on plain text.
	color.NoColor = true
}

func sampleResult(t *testing.T) *analysis.Result {
	t.Helper()
	res := analysis.Analyze("We picked the CDN vendor with Jane Smith approving the deal.\n\nThe rollout held up fine.", 100)
	if res == nil {
		t.Fatal("expected a result")
	}
	return res
}

func TestRenderResultSections(t *testing.T) {
	res := sampleResult(t)
	var buf bytes.Buffer
	RenderResult(&buf, res, analysis.GenerateHints(res, res.ChunkSize))

	out := buf.String()
	for _, want := range []string{"Tokens", "Paragraphs (2):", "Chunks (1 @ 100 tokens):", "Entities ("} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHintsEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderHints(&buf, nil)
	if !strings.Contains(buf.String(), "No issues detected") {
		t.Errorf("empty hint list should render a confirmation, got %q", buf.String())
	}
}

func TestRenderHintsSeverities(t *testing.T) {
	var buf bytes.Buffer
	RenderHints(&buf, []analysis.Hint{
		{Severity: analysis.SeverityCritical, Message: "move the lead up"},
		{Severity: analysis.SeverityInfo, Message: "lots of chunks"},
	})
	out := buf.String()
	if !strings.Contains(out, "[critical] move the lead up") {
		t.Errorf("missing critical hint line:\n%s", out)
	}
	if !strings.Contains(out, "[info] lots of chunks") {
		t.Errorf("missing info hint line:\n%s", out)
	}
}

func TestHeatStripLength(t *testing.T) {
	c := analysis.Chunk{TokenCount: 50}
	strip := HeatStrip(c.HeatStrip(HeatSamples))
	if got := strings.Count(strip, "█"); got != HeatSamples {
		t.Errorf("strip has %d blocks, want %d", got, HeatSamples)
	}
}

func TestExcerptTruncates(t *testing.T) {
	long := strings.Repeat("word ", 30)
	got := excerpt(long, 20)
	if len([]rune(got)) != 21 { // 20 runes plus ellipsis
		t.Errorf("excerpt length = %d runes, want 21", len([]rune(got)))
	}
	if got := excerpt("short", 20); got != "short" {
		t.Errorf("short text should pass through, got %q", got)
	}
}
