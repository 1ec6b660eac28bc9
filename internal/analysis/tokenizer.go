// Package analysis implements the chunklens text-analysis pipeline:
// approximate tokenizers for three model families, paragraph and chunk
// segmentation, heuristic entity extraction, positional attention scoring,
// and the hint rules derived from them. Everything here is pure and
// deterministic: no I/O, no state, same input always yields same output.
package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// pattern is one matcher in a tokenizer's priority list. match returns the
// byte length of the prefix it claims, or 0 when it does not apply. When
// splitAt is set, a claimed word longer than splitAt is emitted as
// consecutive pieces of at most splitAt bytes, approximating subword
// splitting of long words.
type pattern struct {
	match   func(s string) int
	splitAt int
}

// scan walks the text left to right, trying each pattern in order at every
// position. When no pattern claims the prefix, exactly one rune is consumed,
// which guarantees forward progress on any input. Concatenating the returned
// tokens reconstructs the input exactly.
func scan(text string, patterns []pattern) []string {
	var tokens []string
	for i := 0; i < len(text); {
		rest := text[i:]
		n, split := 0, 0
		for _, p := range patterns {
			if m := p.match(rest); m > 0 {
				n, split = m, p.splitAt
				break
			}
		}
		if n == 0 {
			_, size := utf8.DecodeRuneInString(rest)
			n = size
		}
		if split > 0 && n > split {
			for j := 0; j < n; j += split {
				end := j + split
				if end > n {
					end = n
				}
				tokens = append(tokens, rest[j:end])
			}
		} else {
			tokens = append(tokens, rest[:n])
		}
		i += n
	}
	return tokens
}

// TokenizeGPT approximates GPT-family byte-pair tokenization. Words longer
// than four letters are split into four-letter pieces.
func TokenizeGPT(text string) []string {
	return scan(text, []pattern{
		{match: matchSpaces},
		{match: matchCapWord(0), splitAt: 4},
		{match: matchLowerWord(0), splitAt: 4},
		{match: matchDigits},
		{match: matchPunct},
		{match: matchSymbol},
	})
}

// TokenizeClaude approximates Claude-family tokenization: longer word pieces
// (six letters capitalized, five lowercase) kept whole.
func TokenizeClaude(text string) []string {
	return scan(text, []pattern{
		{match: matchSpaces},
		{match: matchCapWord(6)},
		{match: matchLowerWord(5)},
		{match: matchDigits},
		{match: matchPunct},
		{match: matchSymbol},
	})
}

// TokenizeGemini approximates SentencePiece-style tokenization: an alphabetic
// run of up to six letters, optionally carrying its leading space as a
// word-boundary marker, wins over whitespace and digit runs.
func TokenizeGemini(text string) []string {
	return scan(text, []pattern{
		{match: matchMarkedAlpha},
		{match: matchSpaces},
		{match: matchDigits},
		{match: matchSymbol},
	})
}

// punctSet is the fixed set of characters the GPT and Claude scans treat as
// standalone punctuation tokens.
const punctSet = `.,!?;:'"()[]{}-`

func isUpperByte(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLowerByte(b byte) bool { return b >= 'a' && b <= 'z' }
func isAlphaByte(b byte) bool { return isUpperByte(b) || isLowerByte(b) }
func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }
func isWordByte(b byte) bool  { return isAlphaByte(b) || isDigitByte(b) || b == '_' }

func matchSpaces(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}

// matchCapWord matches an uppercase letter followed by lowercase letters.
// max caps the total length; 0 means unbounded.
func matchCapWord(max int) func(string) int {
	return func(s string) int {
		if len(s) == 0 || !isUpperByte(s[0]) {
			return 0
		}
		n := 1
		for n < len(s) && isLowerByte(s[n]) && (max == 0 || n < max) {
			n++
		}
		return n
	}
}

// matchLowerWord matches a run of lowercase letters, capped at max (0 means
// unbounded).
func matchLowerWord(max int) func(string) int {
	return func(s string) int {
		n := 0
		for n < len(s) && isLowerByte(s[n]) && (max == 0 || n < max) {
			n++
		}
		return n
	}
}

func matchDigits(s string) int {
	n := 0
	for n < len(s) && isDigitByte(s[n]) {
		n++
	}
	return n
}

func matchPunct(s string) int {
	if len(s) > 0 && strings.IndexByte(punctSet, s[0]) >= 0 {
		return 1
	}
	return 0
}

// matchSymbol claims a single rune that is neither a word character nor
// whitespace (emoji, control characters, non-Latin scripts).
func matchSymbol(s string) int {
	r, size := utf8.DecodeRuneInString(s)
	if size == 1 && (isWordByte(s[0]) || unicode.IsSpace(r)) {
		return 0
	}
	if unicode.IsSpace(r) {
		return 0
	}
	return size
}

// matchMarkedAlpha matches one to six letters, optionally preceded by a
// single space acting as the word-boundary marker.
func matchMarkedAlpha(s string) int {
	i := 0
	if len(s) > 0 && s[0] == ' ' {
		i = 1
	}
	n := i
	for n < len(s) && n-i < 6 && isAlphaByte(s[n]) {
		n++
	}
	if n == i {
		return 0
	}
	return n
}
