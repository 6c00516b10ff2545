// Package similarity computes the token-overlap score used to relate
// questions across content collections.
package similarity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Score returns the Jaccard coefficient of the token sets of a and b:
// |intersection| / |union| over normalized whitespace-delimited tokens.
// Result is in [0,1]; 1.0 for identical normalized texts, 0.0 when either
// side has no tokens or no token is shared. Symmetric, deterministic and
// safe for concurrent use.
//
// Normalization: lowercase, punctuation and symbols replaced with spaces,
// whitespace collapsed. Tokens of a single rune are dropped; this rule is
// fixed because changing it changes which items surface as related.
// No stemming, no embeddings, token order irrelevant.
func Score(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// tokenSet normalizes s and returns its distinct tokens.
func tokenSet(s string) map[string]struct{} {
	normalized := strings.ToLower(strings.Map(stripMark, s))

	set := make(map[string]struct{})
	for _, token := range strings.Fields(normalized) {
		if utf8.RuneCountInString(token) <= 1 {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// stripMark maps punctuation and symbol runes to spaces so they act as
// token separators in mixed Korean/English text.
func stripMark(r rune) rune {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return ' '
	}
	return r
}
