package summarize

import (
	"strings"
	"unicode"
)

// Common abbreviations that end with a period but do not terminate a
// sentence. Compared against the lowercased token preceding the period.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "inc": {}, "ltd": {}, "co": {}, "corp": {},
	"gov": {}, "sen": {}, "rep": {}, "gen": {}, "col": {}, "capt": {}, "lt": {},
	"u.s": {}, "u.k": {}, "a.m": {}, "p.m": {}, "e.g": {}, "i.e": {},
	"no": {}, "dept": {}, "univ": {}, "est": {}, "approx": {}, "fig": {},
}

// SplitSentences splits text into sentences on terminator punctuation,
// guarding against common abbreviations and initials.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Only break when followed by whitespace
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}

		if r == '.' && isAbbreviation(current.String()) {
			continue
		}

		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	if rest := strings.TrimSpace(current.String()); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

// isAbbreviation reports whether the text ends in an abbreviation or a
// single-letter initial followed by a period.
func isAbbreviation(text string) bool {
	text = strings.TrimSuffix(text, ".")

	idx := strings.LastIndexFunc(text, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	token := strings.ToLower(text[idx+1:])

	if len(token) == 1 {
		return true // single-letter initial, e.g. "George W."
	}
	_, ok := abbreviations[token]
	return ok
}

// stripPunctuation removes punctuation and symbol runes, keeping letters,
// digits, and whitespace.
func stripPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
