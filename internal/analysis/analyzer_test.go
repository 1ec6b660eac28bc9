package analysis

import (
	"strings"
	"testing"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t"} {
		if res := Analyze(input, 100); res != nil {
			t.Errorf("Analyze(%q) = %+v, want nil", input, res)
		}
	}
}

func TestAnalyzeTwoShortParagraphs(t *testing.T) {
	text := "The launch went well overall.\n\nEveryone was pleased with it."
	res := Analyze(text, 100)
	if res == nil {
		t.Fatal("expected a result")
	}

	if len(res.Chunks) != 1 {
		t.Errorf("chunk count = %d, want 1", len(res.Chunks))
	}
	if len(res.Paragraphs) != 2 {
		t.Fatalf("paragraph count = %d, want 2", len(res.Paragraphs))
	}
	for _, p := range res.Paragraphs {
		if p.ExceedsChunk {
			t.Errorf("paragraph %d flagged as exceeding a 100-token chunk", p.Index)
		}
		if p.ChunksRequired != 1 {
			t.Errorf("paragraph %d requires %d chunks, want 1", p.Index, p.ChunksRequired)
		}
	}
}

func TestAnalyzeLongParagraph(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("lorem ipsum dolor sit amet ", 20))
	res := Analyze(text, 90)
	if res == nil {
		t.Fatal("expected a result")
	}
	if len(res.Paragraphs) != 1 {
		t.Fatalf("paragraph count = %d, want 1", len(res.Paragraphs))
	}

	p := res.Paragraphs[0]
	if p.TokenCount <= 90 {
		t.Fatalf("test input too short: %d tokens", p.TokenCount)
	}
	if !p.ExceedsChunk {
		t.Error("paragraph should exceed the 90-token chunk size")
	}
	if want := (p.TokenCount + 89) / 90; p.ChunksRequired != want {
		t.Errorf("chunksRequired = %d, want %d", p.ChunksRequired, want)
	}
}

func TestAnalyzeTokenCountsAndVariance(t *testing.T) {
	res := Analyze("Some reasonably ordinary sentence for counting tokens.", 100)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.TokenCounts.GPT == 0 || res.TokenCounts.Claude == 0 || res.TokenCounts.Gemini == 0 {
		t.Fatalf("zero token count in %+v", res.TokenCounts)
	}
	if res.VariancePct < 0 {
		t.Errorf("variance = %d, want >= 0", res.VariancePct)
	}

	mx := max3(res.TokenCounts.GPT, res.TokenCounts.Claude, res.TokenCounts.Gemini)
	mn := min3(res.TokenCounts.GPT, res.TokenCounts.Claude, res.TokenCounts.Gemini)
	want := int(float64(mx-mn)/float64(res.TokenCounts.GPT)*100 + 0.5)
	if res.VariancePct != want {
		t.Errorf("variance = %d, want %d", res.VariancePct, want)
	}
}

func TestAnalyzeEntityPlacement(t *testing.T) {
	text := "We rely on the CDN for delivery and the CDN has held up."
	res := Analyze(text, 5)
	if res == nil {
		t.Fatal("expected a result")
	}
	if len(res.Entities) == 0 {
		t.Fatal("expected entities")
	}
	for _, e := range res.Entities {
		if e.TokenIndex < 0 || e.TokenIndex >= res.TokenCounts.GPT {
			t.Errorf("entity %q token index %d out of range", e.Text, e.TokenIndex)
		}
		if want := e.TokenIndex / 5; e.ChunkIndex != want {
			t.Errorf("entity %q chunk index = %d, want %d", e.Text, e.ChunkIndex, want)
		}
		if want := e.TokenIndex % 5; e.ChunkPos != want {
			t.Errorf("entity %q chunk pos = %d, want %d", e.Text, e.ChunkPos, want)
		}
		if got := Attention(e.ChunkPos, 5); got != e.Attention {
			t.Errorf("entity %q attention = %v, want %v", e.Text, e.Attention, got)
		}
		if e.LowAttention != (e.Attention < LowAttentionThreshold) {
			t.Errorf("entity %q low-attention flag disagrees with score %v", e.Text, e.Attention)
		}
	}
}

func TestTokenIndexAtClampsPastEnd(t *testing.T) {
	tokens := []string{"ab", "cd", "ef"}
	if got := tokenIndexAt(tokens, 3); got != 1 {
		t.Errorf("tokenIndexAt(3) = %d, want 1", got)
	}
	// An offset beyond the token stream clamps to the last token instead of
	// wrapping to zero.
	if got := tokenIndexAt(tokens, 999); got != 2 {
		t.Errorf("tokenIndexAt(999) = %d, want 2", got)
	}
	if got := tokenIndexAt(nil, 10); got != 0 {
		t.Errorf("tokenIndexAt on empty tokens = %d, want 0", got)
	}
}

func TestEfficiencyLabels(t *testing.T) {
	tests := []struct {
		wordsPerToken float64
		want          string
	}{
		{0.80, EfficiencyOptimal},
		{0.75, EfficiencyOptimal},
		{0.70, EfficiencyAcceptable},
		{0.65, EfficiencyAcceptable},
		{0.40, EfficiencyVerbose},
		{0.0, EfficiencyVerbose},
	}
	for _, tt := range tests {
		if got := efficiencyLabel(tt.wordsPerToken); got != tt.want {
			t.Errorf("efficiencyLabel(%v) = %q, want %q", tt.wordsPerToken, got, tt.want)
		}
	}
}

func TestAnalyzeClampsChunkSize(t *testing.T) {
	res := Analyze("tiny text", 0)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.ChunkSize != 1 {
		t.Errorf("chunk size = %d, want clamp to 1", res.ChunkSize)
	}
	if len(res.Chunks) != res.TokenCounts.GPT {
		t.Errorf("with size 1, chunk count %d should equal token count %d",
			len(res.Chunks), res.TokenCounts.GPT)
	}
}

func TestAnalyzeWordCount(t *testing.T) {
	res := Analyze("  three little words  ", 100)
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.WordCount != 3 {
		t.Errorf("word count = %d, want 3", res.WordCount)
	}
	if res.WordsPerToken <= 0 {
		t.Errorf("words per token = %v, want > 0", res.WordsPerToken)
	}
}
