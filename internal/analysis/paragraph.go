package analysis

import (
	"regexp"
	"strings"
)

// Paragraph is one blank-line-separated block of the document with its
// token cost measured against the active chunk size.
type Paragraph struct {
	Index          int    `json:"index"`
	Text           string `json:"text"`
	TokenCount     int    `json:"tokenCount"`
	ExceedsChunk   bool   `json:"exceedsChunk"`
	ChunksRequired int    `json:"chunksRequired"`
}

var paragraphSep = regexp.MustCompile(`\n{2,}`)

// SplitParagraphs splits text on runs of two or more newlines, trims each
// block, and drops blocks that are empty after trimming. Whitespace-only
// input yields nil.
func SplitParagraphs(text string) []string {
	var out []string
	for _, block := range paragraphSep.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

// buildParagraphs measures each paragraph with the primary tokenizer and
// derives how many chunks it would need on its own.
func buildParagraphs(text string, chunkSize int) []Paragraph {
	blocks := SplitParagraphs(text)
	paragraphs := make([]Paragraph, 0, len(blocks))
	for i, block := range blocks {
		count := len(TokenizeGPT(block))
		paragraphs = append(paragraphs, Paragraph{
			Index:          i,
			Text:           block,
			TokenCount:     count,
			ExceedsChunk:   count > chunkSize,
			ChunksRequired: (count + chunkSize - 1) / chunkSize,
		})
	}
	return paragraphs
}
