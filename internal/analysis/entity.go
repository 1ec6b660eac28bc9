package analysis

import (
	"regexp"
	"strings"
	"unicode"
)

// Entity is a heuristically detected proper-noun phrase or acronym. Offset
// is the byte position of the match in the original text; the positional
// fields (TokenIndex onward) are filled in during aggregation.
type Entity struct {
	Text         string  `json:"text"`
	Offset       int     `json:"offset"`
	TokenIndex   int     `json:"tokenIndex"`
	ChunkIndex   int     `json:"chunkIndex"`
	ChunkPos     int     `json:"chunkPos"`
	Attention    float64 `json:"attention"`
	LowAttention bool    `json:"lowAttention"`
}

var (
	// One or more capitalized words joined by single spaces.
	capPhrasePattern = regexp.MustCompile(`[A-Z][a-z]+(?: [A-Z][a-z]+)*`)
	// Standalone runs of two or more uppercase letters.
	acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	// Sentence terminator followed by whitespace; the match end is where the
	// next sentence begins.
	sentenceEndPattern = regexp.MustCompile(`[.!?]\s+`)
)

// ExtractEntities runs two scans over the raw text and concatenates their
// hits without deduplication: capitalized phrases longer than two characters
// that do not merely open a sentence, then acronyms. A name repeated N times
// yields N entries, each with its own offset.
func ExtractEntities(text string) []Entity {
	var entities []Entity

	starts := sentenceStarts(text)
	for _, m := range capPhrasePattern.FindAllStringIndex(text, -1) {
		if m[1]-m[0] <= 2 || starts[m[0]] {
			continue
		}
		entities = append(entities, Entity{Text: text[m[0]:m[1]], Offset: m[0]})
	}

	for _, m := range acronymPattern.FindAllStringIndex(text, -1) {
		entities = append(entities, Entity{Text: text[m[0]:m[1]], Offset: m[0]})
	}

	return entities
}

// sentenceStarts returns the offsets at which a sentence begins: the first
// non-space position of the document and the first position after every
// terminator-plus-whitespace boundary. A capitalized phrase starting at one
// of these offsets is just a sentence opener, not an entity candidate.
func sentenceStarts(text string) map[int]bool {
	starts := make(map[int]bool)
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	starts[len(text)-len(trimmed)] = true
	for _, m := range sentenceEndPattern.FindAllStringIndex(text, -1) {
		starts[m[1]] = true
	}
	return starts
}
