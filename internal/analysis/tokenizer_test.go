package analysis

import (
	"strings"
	"testing"
)

type tokenizeFunc struct {
	name string
	fn   func(string) []string
}

func allTokenizers() []tokenizeFunc {
	return []tokenizeFunc{
		{"gpt", TokenizeGPT},
		{"claude", TokenizeClaude},
		{"gemini", TokenizeGemini},
	}
}

func TestTokenizersReconstructInput(t *testing.T) {
	inputs := []string{
		"",
		"   \t\n  ",
		"Hello, world!",
		"The Quick Brown Fox jumps over 42 lazy dogs.",
		"no-alphanumerics: @#$%^&*",
		"emoji 🚀 and control \x01 chars",
		"mixed скрипт 漢字 text",
		"trailing newline\n",
		"para one\n\n\npara two",
	}
	for _, tz := range allTokenizers() {
		for _, input := range inputs {
			tokens := tz.fn(input)
			if got := strings.Join(tokens, ""); got != input {
				t.Errorf("%s: concatenated tokens = %q, want %q", tz.name, got, input)
			}
		}
	}
}

func TestTokenizersTerminateOnAdversarialInput(t *testing.T) {
	input := strings.Repeat("#", 10000)
	for _, tz := range allTokenizers() {
		tokens := tz.fn(input)
		if len(tokens) > len(input) {
			t.Errorf("%s: %d tokens for %d characters", tz.name, len(tokens), len(input))
		}
		if strings.Join(tokens, "") != input {
			t.Errorf("%s: reconstruction failed on adversarial input", tz.name)
		}
	}
}

func TestTokenizeGPTSplitsLongWords(t *testing.T) {
	tokens := TokenizeGPT("internationalization")
	want := []string{"inte", "rnat", "iona", "liza", "tion"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %q, want %q", i, tok, want[i])
		}
	}
}

func TestTokenizeGPTShortWordsKeptWhole(t *testing.T) {
	tokens := TokenizeGPT("word")
	if len(tokens) != 1 || tokens[0] != "word" {
		t.Errorf("got %v, want [word]", tokens)
	}
}

func TestTokenizeClaudeLengthCaps(t *testing.T) {
	// Capitalized words cap at six characters, lowercase at five, with no
	// further splitting.
	tokens := TokenizeClaude("Tokenization")
	want := []string{"Tokeni", "zatio", "n"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %q, want %q", i, tok, want[i])
		}
	}
}

func TestTokenizeGeminiBoundaryMarker(t *testing.T) {
	// A word preceded by a space carries the space as its boundary marker.
	tokens := TokenizeGemini("one two")
	want := []string{"one", " two"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %q, want %q", i, tok, want[i])
		}
	}
}

func TestTokenizeGeminiAlphaRunCap(t *testing.T) {
	tokens := TokenizeGemini("abcdefghij")
	want := []string{"abcdef", "ghij"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %q, want %q", i, tok, want[i])
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	for _, tz := range allTokenizers() {
		if tokens := tz.fn(""); len(tokens) != 0 {
			t.Errorf("%s: expected no tokens for empty input, got %v", tz.name, tokens)
		}
	}
}
