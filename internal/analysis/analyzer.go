package analysis

import (
	"math"
	"strings"
)

// DefaultChunkSize is the chunk size used when none is configured.
const DefaultChunkSize = 100

// ChunkSizePresets are the recommended chunk sizes surfaced in the CLI; any
// positive size is accepted.
var ChunkSizePresets = []int{90, 100, 120, 256, 512}

// TokenCounts holds the per-family token count estimates.
type TokenCounts struct {
	GPT    int `json:"gpt"`
	Claude int `json:"claude"`
	Gemini int `json:"gemini"`
}

// Efficiency labels for the words-per-token ratio.
const (
	EfficiencyOptimal    = "optimal"
	EfficiencyAcceptable = "acceptable"
	EfficiencyVerbose    = "verbose"
)

// Result is the full analysis of one document at one chunk size.
type Result struct {
	ChunkSize     int         `json:"chunkSize"`
	TokenCounts   TokenCounts `json:"tokenCounts"`
	VariancePct   int         `json:"variancePct"`
	Paragraphs    []Paragraph `json:"paragraphs"`
	Chunks        []Chunk     `json:"chunks"`
	Entities      []Entity    `json:"entities"`
	WordCount     int         `json:"wordCount"`
	WordsPerToken float64     `json:"wordsPerToken"`
	Efficiency    string      `json:"efficiency"`
}

// Analyze runs the whole pipeline over text at the given chunk size and
// returns nil when the trimmed text is empty, since "no analysis available"
// is a valid outcome, not an error. A chunk size below 1 is clamped to 1.
func Analyze(text string, chunkSize int) *Result {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if chunkSize < 1 {
		chunkSize = 1
	}

	tokens := TokenizeGPT(text)
	counts := TokenCounts{
		GPT:    len(tokens),
		Claude: len(TokenizeClaude(text)),
		Gemini: len(TokenizeGemini(text)),
	}

	variance := 0
	if counts.GPT > 0 {
		mx := max3(counts.GPT, counts.Claude, counts.Gemini)
		mn := min3(counts.GPT, counts.Claude, counts.Gemini)
		variance = int(math.Round(float64(mx-mn) / float64(counts.GPT) * 100))
	}

	entities := ExtractEntities(text)
	for i := range entities {
		locateEntity(&entities[i], tokens, chunkSize)
	}

	wordCount := len(strings.Fields(text))
	wordsPerToken := 0.0
	if counts.GPT > 0 {
		wordsPerToken = float64(wordCount) / float64(counts.GPT)
	}

	return &Result{
		ChunkSize:     chunkSize,
		TokenCounts:   counts,
		VariancePct:   variance,
		Paragraphs:    buildParagraphs(text, chunkSize),
		Chunks:        BuildChunks(tokens, chunkSize),
		Entities:      entities,
		WordCount:     wordCount,
		WordsPerToken: wordsPerToken,
		Efficiency:    efficiencyLabel(wordsPerToken),
	}
}

// locateEntity maps the entity's byte offset to a token index by walking the
// primary token stream, then derives its chunk coordinates and scores it.
// Offsets past the final token clamp to the last token index rather than
// wrapping back to position zero.
func locateEntity(e *Entity, tokens []string, chunkSize int) {
	e.TokenIndex = tokenIndexAt(tokens, e.Offset)
	e.ChunkIndex = e.TokenIndex / chunkSize
	e.ChunkPos = e.TokenIndex % chunkSize
	e.Attention = Attention(e.ChunkPos, chunkSize)
	e.LowAttention = e.Attention < LowAttentionThreshold
}

// tokenIndexAt returns the index of the token covering the given byte
// offset: the first token whose cumulative length passes it.
func tokenIndexAt(tokens []string, offset int) int {
	cum := 0
	for i, tok := range tokens {
		cum += len(tok)
		if cum > offset {
			return i
		}
	}
	if len(tokens) == 0 {
		return 0
	}
	return len(tokens) - 1
}

func efficiencyLabel(wordsPerToken float64) string {
	switch {
	case wordsPerToken >= 0.75:
		return EfficiencyOptimal
	case wordsPerToken >= 0.65:
		return EfficiencyAcceptable
	default:
		return EfficiencyVerbose
	}
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
