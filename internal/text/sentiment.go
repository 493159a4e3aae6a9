// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package text

// Sentiment lexicon tuned for consumer-electronics reviews. Words outside
// the lexicon contribute nothing to the score.
var (
	positiveWords = map[string]struct{}{
		"great": {}, "excellent": {}, "amazing": {}, "love": {},
		"fast": {}, "snappy": {}, "beautiful": {}, "clear": {},
		"crystal": {}, "smooth": {}, "awesome": {}, "perfect": {},
		"good": {}, "durable": {}, "battery": {}, "bright": {},
	}

	negativeWords = map[string]struct{}{
		"bad": {}, "poor": {}, "slow": {}, "broken": {},
		"cracked": {}, "damage": {}, "overheats": {}, "lag": {},
		"laggy": {}, "heavy": {}, "dim": {}, "terrible": {},
		"awful": {}, "disappoint": {}, "noisy": {},
	}
)

// SentimentScore computes a signed lexicon score for s: +1 per positive
// token occurrence, -1 per negative one. Zero means neutral or unknown
// vocabulary. The score is unbounded in either direction for long texts.
func SentimentScore(s string) int {
	score := 0
	for _, tok := range Tokenize(s) {
		if _, ok := positiveWords[tok]; ok {
			score++
		}
		if _, ok := negativeWords[tok]; ok {
			score--
		}
	}
	return score
}
