package analysis

import "strings"

// Chunk is a fixed-size window of consecutive tokens simulating one
// retrieval-system ingestion unit. Chunks partition the token sequence
// exactly: every token belongs to one chunk, in original order, and only the
// final chunk may be shorter than the configured size.
type Chunk struct {
	Index      int    `json:"index"`
	StartToken int    `json:"startToken"`
	EndToken   int    `json:"endToken"` // inclusive
	Text       string `json:"text"`
	TokenCount int    `json:"tokenCount"`
}

// BuildChunks partitions tokens into ceil(len(tokens)/size) windows. A size
// below 1 is clamped to 1. An empty token sequence yields no chunks.
func BuildChunks(tokens []string, size int) []Chunk {
	if size < 1 {
		size = 1
	}
	var chunks []Chunk
	for start := 0; start < len(tokens); start += size {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, Chunk{
			Index:      len(chunks),
			StartToken: start,
			EndToken:   end - 1,
			Text:       strings.Join(tokens[start:end], ""),
			TokenCount: end - start,
		})
	}
	return chunks
}

// HeatStrip samples the attention curve across the chunk at evenly spaced
// relative positions, for rendering a per-chunk heat bar.
func (c Chunk) HeatStrip(samples int) []float64 {
	if samples < 1 {
		return nil
	}
	strip := make([]float64, samples)
	for i := range strip {
		strip[i] = AttentionAt(float64(i) / float64(samples))
	}
	return strip
}
