package analyzer

import (
	"strings"
	"unicode"
)

// Tokenizer splits cleaned text into word tokens.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize returns the maximal runs of word characters in text, in order.
// Separators are discarded. Empty input yields an empty, non-nil slice.
func (t *Tokenizer) Tokenize(text string) []string {
	words := splitWords(text)
	if words == nil {
		return []string{}
	}
	return words
}

// splitWords splits text on anything that is not a letter, digit or underscore.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if isWordRune(r) {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
