// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package text provides the shared tokenization and sentiment primitives
// used by review summarization, product search, and the chat assistant.
//
// All consumers must tokenize identically, otherwise search scores and
// review themes drift apart. Keep the pipeline here and nowhere else.
package text

import (
	"regexp"
	"strings"
)

// stopwords are common English filler words removed during tokenization.
// They carry no signal for search ranking, theme extraction, or sentiment.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "an": {}, "is": {}, "it": {},
	"this": {}, "that": {}, "to": {}, "of": {}, "for": {}, "in": {},
	"on": {}, "with": {}, "very": {}, "really": {}, "my": {}, "our": {},
	"your": {}, "all": {}, "at": {}, "as": {}, "was": {}, "were": {},
	"be": {}, "are": {}, "but": {}, "so": {}, "if": {}, "by": {},
	"from": {}, "has": {}, "have": {}, "had": {}, "its": {}, "i": {},
	"me": {}, "we": {}, "you": {}, "they": {},
}

// nonAlnum matches every character that is not a lowercase letter, digit,
// or whitespace. Applied after lowercasing.
var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

// Normalize lowercases s and replaces every character outside a-z, 0-9 and
// whitespace with a single space. Punctuation therefore acts as a token
// boundary ("crystal-clear" tokenizes as "crystal", "clear").
func Normalize(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), " ")
}

// Tokenize splits s into lowercase alphanumeric tokens with stopwords
// removed. Appearance order is preserved and duplicates are kept, so theme
// counting sees every occurrence.
func Tokenize(s string) []string {
	fields := strings.Fields(Normalize(s))
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// IsStopword reports whether tok would be dropped by Tokenize.
func IsStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}
