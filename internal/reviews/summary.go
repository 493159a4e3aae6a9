// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package reviews aggregates customer reviews into sentiment summaries.
package reviews

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/mercatus/internal/models"
	"github.com/tomtom215/mercatus/internal/text"
)

// maxThemes caps the number of recurring themes reported per summary.
const maxThemes = 5

// Summarize aggregates reviews into average rating, sentiment buckets, and
// the top recurring themes.
//
// Each review lands in exactly one bucket: positive when rating >= 4 or the
// text's sentiment score is above zero; otherwise negative when rating <= 2
// or the score is below zero; otherwise neutral. The positive branch is
// checked first, so a 5-star review with negative wording still counts
// positive.
//
// An empty input returns a zero-valued summary with the "No reviews yet."
// text so callers can hand it straight to clients.
func Summarize(revs []models.Review) models.ReviewSummary {
	if len(revs) == 0 {
		return models.ReviewSummary{
			Themes:      []models.Theme{},
			SummaryText: "No reviews yet.",
		}
	}

	var (
		totalRating float64
		sentiment   models.SentimentBreakdown
		counts      = make(map[string]int)
		firstSeen   = make(map[string]int)
		order       int
	)

	for _, rev := range revs {
		totalRating += rev.Rating

		score := text.SentimentScore(rev.Text)
		switch {
		case rev.Rating >= 4 || score > 0:
			sentiment.Positive++
		case rev.Rating <= 2 || score < 0:
			sentiment.Negative++
		default:
			sentiment.Neutral++
		}

		for _, tok := range text.Tokenize(rev.Text) {
			if _, seen := firstSeen[tok]; !seen {
				firstSeen[tok] = order
				order++
			}
			counts[tok]++
		}
	}

	avg := round2(totalRating / float64(len(revs)))
	themes := topThemes(counts, firstSeen, maxThemes)

	return models.ReviewSummary{
		AverageRating: avg,
		TotalReviews:  len(revs),
		Sentiment:     sentiment,
		Themes:        themes,
		SummaryText:   summaryLine(avg, len(revs), themes),
	}
}

// topThemes returns the n most frequent tokens, ordered by count descending
// with ties broken by first appearance in the review stream.
func topThemes(counts map[string]int, firstSeen map[string]int, n int) []models.Theme {
	themes := make([]models.Theme, 0, len(counts))
	for word, count := range counts {
		themes = append(themes, models.Theme{Word: word, Count: count})
	}

	sort.Slice(themes, func(i, j int) bool {
		if themes[i].Count != themes[j].Count {
			return themes[i].Count > themes[j].Count
		}
		return firstSeen[themes[i].Word] < firstSeen[themes[j].Word]
	})

	if len(themes) > n {
		themes = themes[:n]
	}
	return themes
}

// summaryLine renders the one-line deterministic summary shown to clients.
func summaryLine(avg float64, total int, themes []models.Theme) string {
	noun := "reviews"
	if total == 1 {
		noun = "review"
	}
	line := fmt.Sprintf("Based on %d %s, customers rate this product %.1f/5.", total, noun, avg)

	if len(themes) > 0 {
		limit := len(themes)
		if limit > 3 {
			limit = 3
		}
		words := make([]string, 0, limit)
		for _, theme := range themes[:limit] {
			words = append(words, theme.Word)
		}
		line += " Common themes: " + strings.Join(words, ", ") + "."
	}
	return line
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
