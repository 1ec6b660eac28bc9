package analysis

import (
	"strings"
	"testing"
)

func cleanResult() *Result {
	return &Result{
		ChunkSize:     100,
		TokenCounts:   TokenCounts{GPT: 50, Claude: 48, Gemini: 52},
		Paragraphs:    []Paragraph{{Index: 0, TokenCount: 50, ChunksRequired: 1}},
		Chunks:        []Chunk{{Index: 0, TokenCount: 50}},
		WordsPerToken: 0.8,
		Efficiency:    EfficiencyOptimal,
	}
}

func hasSeverity(hints []Hint, sev Severity) bool {
	for _, h := range hints {
		if h.Severity == sev {
			return true
		}
	}
	return false
}

func TestGenerateHintsNoIssues(t *testing.T) {
	hints := GenerateHints(cleanResult(), 100)
	if len(hints) != 0 {
		t.Errorf("expected no hints, got %v", hints)
	}
}

func TestGenerateHintsNilResult(t *testing.T) {
	if hints := GenerateHints(nil, 100); len(hints) != 0 {
		t.Errorf("expected no hints for nil result, got %v", hints)
	}
}

func TestGenerateHintsBuriedEntities(t *testing.T) {
	res := cleanResult()
	res.Entities = []Entity{
		{Text: "Acme", ChunkIndex: 0, Attention: 0.9},
		{Text: "Widget Co", ChunkIndex: 1, Attention: 0.9},
		{Text: "Gadget Inc", ChunkIndex: 2, Attention: 0.9},
	}
	hints := GenerateHints(res, 100)
	if !hasSeverity(hints, SeverityWarning) {
		t.Fatalf("expected a warning, got %v", hints)
	}
	if !strings.Contains(hints[0].Message, "2 entities") {
		t.Errorf("warning should report the later-chunk count: %q", hints[0].Message)
	}
}

func TestGenerateHintsLowAttention(t *testing.T) {
	res := cleanResult()
	res.Entities = []Entity{
		{Text: "Alpha", ChunkIndex: 0, Attention: 0.58, LowAttention: true},
		{Text: "Beta", ChunkIndex: 0, Attention: 0.60, LowAttention: true},
		{Text: "Gamma", ChunkIndex: 0, Attention: 0.61, LowAttention: true},
		{Text: "Delta", ChunkIndex: 0, Attention: 0.62, LowAttention: true},
	}
	hints := GenerateHints(res, 100)
	if !hasSeverity(hints, SeverityCritical) {
		t.Fatalf("expected a critical hint, got %v", hints)
	}
	var critical Hint
	for _, h := range hints {
		if h.Severity == SeverityCritical {
			critical = h
		}
	}
	if !strings.Contains(critical.Message, "4 entities") {
		t.Errorf("critical hint should report the count: %q", critical.Message)
	}
	// Examples cap at three, in extraction order.
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		if !strings.Contains(critical.Message, name) {
			t.Errorf("critical hint missing example %q: %q", name, critical.Message)
		}
	}
	if strings.Contains(critical.Message, "Delta") {
		t.Errorf("critical hint should list at most three examples: %q", critical.Message)
	}
}

func TestGenerateHintsLongParagraphs(t *testing.T) {
	res := cleanResult()
	res.Paragraphs = append(res.Paragraphs, Paragraph{Index: 1, TokenCount: 140, ExceedsChunk: true, ChunksRequired: 2})
	hints := GenerateHints(res, 100)
	if !hasSeverity(hints, SeverityWarning) {
		t.Fatalf("expected a warning, got %v", hints)
	}
	if !strings.Contains(hints[0].Message, "100-token") {
		t.Errorf("warning should name the active chunk size: %q", hints[0].Message)
	}
}

func TestGenerateHintsVerbose(t *testing.T) {
	res := cleanResult()
	res.Efficiency = EfficiencyVerbose
	res.WordsPerToken = 0.42
	hints := GenerateHints(res, 100)
	if !hasSeverity(hints, SeverityOptimize) {
		t.Fatalf("expected an optimize hint, got %v", hints)
	}
	if !strings.Contains(hints[0].Message, "0.42") {
		t.Errorf("optimize hint should report the ratio: %q", hints[0].Message)
	}
}

func TestGenerateHintsManyChunks(t *testing.T) {
	res := cleanResult()
	res.Chunks = make([]Chunk, 8)
	hints := GenerateHints(res, 100)
	if !hasSeverity(hints, SeverityInfo) {
		t.Fatalf("expected an info hint, got %v", hints)
	}
	if !strings.Contains(hints[0].Message, "8 chunks") {
		t.Errorf("info hint should report the chunk count: %q", hints[0].Message)
	}
}

func TestGenerateHintsOversizedChunks(t *testing.T) {
	hints := GenerateHints(cleanResult(), 256)
	if !hasSeverity(hints, SeverityOptimize) {
		t.Fatalf("expected an optimize hint, got %v", hints)
	}
	if !strings.Contains(hints[0].Message, "90-120") {
		t.Errorf("optimize hint should recommend the 90-120 range: %q", hints[0].Message)
	}
}

func TestGenerateHintsOrder(t *testing.T) {
	res := cleanResult()
	res.Entities = []Entity{
		{Text: "Late Name", ChunkIndex: 3, Attention: 0.58, LowAttention: true},
	}
	res.Efficiency = EfficiencyVerbose
	res.Chunks = make([]Chunk, 6)
	hints := GenerateHints(res, 200)

	want := []Severity{SeverityWarning, SeverityCritical, SeverityOptimize, SeverityInfo, SeverityOptimize}
	if len(hints) != len(want) {
		t.Fatalf("got %d hints %v, want %d", len(hints), hints, len(want))
	}
	for i, sev := range want {
		if hints[i].Severity != sev {
			t.Errorf("hint %d severity = %s, want %s", i, hints[i].Severity, sev)
		}
	}
}
