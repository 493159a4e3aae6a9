// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/mercatus/internal/models"
)

// Source file names inside the data directory.
const (
	productsFile = "products.csv"
	reviewsFile  = "reviews.csv"
	policiesFile = "store_policies.csv"
)

var sourceFiles = []string{productsFile, reviewsFile, policiesFile}

// Snapshot is one immutable, fully loaded view of the catalog. A snapshot is
// built in full before it becomes visible; readers never observe a partially
// loaded catalog. All fields are read-only after construction.
type Snapshot struct {
	// Products in source row order. ProductsByID indexes the same values.
	Products     []models.Product
	ProductsByID map[string]models.Product

	// Reviews in source row order, and grouped by product identifier with
	// row order preserved within each group.
	Reviews          []models.Review
	ReviewsByProduct map[string][]models.Review

	Policies []models.Policy

	// LoadedAt is when this snapshot was built. SourceModTime is the newest
	// modification time across the three source files, captured before the
	// files were read so a concurrent write is never missed.
	LoadedAt      time.Time
	SourceModTime time.Time
}

// Product looks up a product by identifier.
func (s *Snapshot) Product(id string) (models.Product, bool) {
	p, ok := s.ProductsByID[id]
	return p, ok
}

// ProductReviews returns a product's reviews in source order. The result is
// nil for unknown products; callers must not mutate it.
func (s *Snapshot) ProductReviews(id string) []models.Review {
	return s.ReviewsByProduct[id]
}

// loadSnapshot reads all three source files under dir and builds a snapshot.
// Any read or parse failure aborts the whole load; malformed numeric fields
// are errors rather than silently zeroed values, since zeroes would corrupt
// ranking and comparison arithmetic downstream.
func loadSnapshot(dir string) (*Snapshot, error) {
	modTime, err := sourceModTime(dir)
	if err != nil {
		return nil, err
	}

	products, err := readProducts(filepath.Join(dir, productsFile))
	if err != nil {
		return nil, err
	}
	reviews, err := readReviews(filepath.Join(dir, reviewsFile))
	if err != nil {
		return nil, err
	}
	policies, err := readPolicies(filepath.Join(dir, policiesFile))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	byProduct := make(map[string][]models.Review)
	for _, r := range reviews {
		byProduct[r.ProductID] = append(byProduct[r.ProductID], r)
	}

	return &Snapshot{
		Products:         products,
		ProductsByID:     byID,
		Reviews:          reviews,
		ReviewsByProduct: byProduct,
		Policies:         policies,
		LoadedAt:         time.Now(),
		SourceModTime:    modTime,
	}, nil
}

// sourceModTime returns the newest modification time across the source files.
func sourceModTime(dir string) (time.Time, error) {
	var latest time.Time
	for _, name := range sourceFiles {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return time.Time{}, fmt.Errorf("stat catalog source %s: %w", name, err)
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest, nil
}

func readProducts(path string) ([]models.Product, error) {
	rows, cols, err := openCSV(path, "id", "name", "brand", "category", "price", "description", "stock", "rating")
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // header is line 1

		price, err := parseFloatField(row[cols["price"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid price %q", productsFile, line, row[cols["price"]])
		}
		stock, err := parseIntField(row[cols["stock"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid stock %q", productsFile, line, row[cols["stock"]])
		}
		rating, err := parseFloatField(row[cols["rating"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid rating %q", productsFile, line, row[cols["rating"]])
		}

		products = append(products, models.Product{
			ID:          strings.TrimSpace(row[cols["id"]]),
			Name:        row[cols["name"]],
			Brand:       row[cols["brand"]],
			Category:    strings.TrimSpace(row[cols["category"]]),
			Price:       price,
			Description: row[cols["description"]],
			Stock:       stock,
			Rating:      rating,
		})
	}
	return products, nil
}

func readReviews(path string) ([]models.Review, error) {
	rows, cols, err := openCSV(path, "product_id", "rating", "text", "date")
	if err != nil {
		return nil, err
	}

	revs := make([]models.Review, 0, len(rows))
	for i, row := range rows {
		line := i + 2

		rating, err := parseFloatField(row[cols["rating"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid rating %q", reviewsFile, line, row[cols["rating"]])
		}

		date := strings.TrimSpace(row[cols["date"]])
		if date != "" {
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return nil, fmt.Errorf("%s row %d: invalid date %q (want YYYY-MM-DD)", reviewsFile, line, date)
			}
		}

		revs = append(revs, models.Review{
			ProductID: strings.TrimSpace(row[cols["product_id"]]),
			Rating:    rating,
			Text:      row[cols["text"]],
			Date:      date,
		})
	}
	return revs, nil
}

func readPolicies(path string) ([]models.Policy, error) {
	rows, cols, err := openCSV(path, "policy_type", "description", "conditions", "timeframe")
	if err != nil {
		return nil, err
	}

	policies := make([]models.Policy, 0, len(rows))
	for i, row := range rows {
		line := i + 2

		timeframe, err := parseIntField(row[cols["timeframe"]])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid timeframe %q", policiesFile, line, row[cols["timeframe"]])
		}

		policies = append(policies, models.Policy{
			PolicyType:  strings.TrimSpace(row[cols["policy_type"]]),
			Description: row[cols["description"]],
			Conditions:  splitConditions(row[cols["conditions"]]),
			Timeframe:   timeframe,
		})
	}
	return policies, nil
}

// openCSV reads the whole file and maps the required header columns to
// indices. Extra columns are ignored; missing ones are an error.
func openCSV(path string, required ...string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
		}
		return nil, nil, fmt.Errorf("read %s header: %w", filepath.Base(path), err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("%s: missing column %q", filepath.Base(path), name)
		}
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return rows, cols, nil
}

// splitConditions splits a pipe-delimited conditions cell into a list,
// dropping empty segments.
func splitConditions(raw string) []string {
	conds := make([]string, 0, 4)
	for _, part := range strings.Split(raw, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			conds = append(conds, part)
		}
	}
	return conds
}

func parseFloatField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseIntField(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
