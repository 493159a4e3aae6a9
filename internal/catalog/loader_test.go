// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

const (
	fixtureProducts = `id,name,brand,category,price,description,stock,rating
LT1001,UltraBook Pro,Lenora,laptop,999.99,Thin and light laptop with bright display,12,4.6
SP2001,Nova X,Stellar,smartphone,699.00,Fast smartphone with crystal clear screen,0,4.2
SPK4001,RoomSound Mini,Sonique,speaker,89.50,Compact speaker with punchy bass,30,4.0
`
	fixtureReviews = `product_id,rating,text,date
LT1001,5,Great battery and fast,2026-01-15
LT1001,2,Screen cracked after a week,2026-02-01
SP2001,4,Love the camera,2026-01-20
`
	fixturePolicies = `policy_type,description,conditions,timeframe
returns,Laptop Return Policy,Original packaging|Proof of purchase,30
warranty,Standard Laptop Warranty,Covers manufacturing defects,365
`
)

// writeFixture populates dir with the standard test catalog and pins every
// source file to a known modification time.
func writeFixture(t *testing.T, dir string) time.Time {
	t.Helper()
	writeSource(t, dir, productsFile, fixtureProducts)
	writeSource(t, dir, reviewsFile, fixtureReviews)
	writeSource(t, dir, policiesFile, fixturePolicies)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for _, name := range sourceFiles {
		if err := os.Chtimes(filepath.Join(dir, name), base, base); err != nil {
			t.Fatalf("chtimes %s: %v", name, err)
		}
	}
	return base
}

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := writeFixture(t, dir)

	snap, err := loadSnapshot(dir)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}

	if len(snap.Products) != 3 {
		t.Fatalf("Expected 3 products, got %d", len(snap.Products))
	}
	if snap.Products[0].ID != "LT1001" || snap.Products[2].ID != "SPK4001" {
		t.Errorf("Expected source row order, got %s..%s", snap.Products[0].ID, snap.Products[2].ID)
	}

	p, ok := snap.Product("SP2001")
	if !ok {
		t.Fatal("Expected SP2001 in ProductsByID")
	}
	if p.Name != "Nova X" || p.Price != 699.00 || p.Stock != 0 || p.Rating != 4.2 {
		t.Errorf("Unexpected product fields: %+v", p)
	}
	if p.InStock() {
		t.Error("Expected SP2001 to be out of stock")
	}

	if len(snap.Reviews) != 3 {
		t.Errorf("Expected 3 reviews, got %d", len(snap.Reviews))
	}
	revs := snap.ProductReviews("LT1001")
	if len(revs) != 2 {
		t.Fatalf("Expected 2 reviews for LT1001, got %d", len(revs))
	}
	if revs[0].Rating != 5 || revs[1].Rating != 2 {
		t.Errorf("Expected reviews grouped in source order, got %v then %v", revs[0].Rating, revs[1].Rating)
	}
	if snap.ProductReviews("NOPE999") != nil {
		t.Error("Expected nil reviews for unknown product")
	}

	if len(snap.Policies) != 2 {
		t.Fatalf("Expected 2 policies, got %d", len(snap.Policies))
	}
	want := []string{"Original packaging", "Proof of purchase"}
	if !reflect.DeepEqual(snap.Policies[0].Conditions, want) {
		t.Errorf("Expected conditions %v, got %v", want, snap.Policies[0].Conditions)
	}
	if snap.Policies[1].Timeframe != 365 {
		t.Errorf("Expected timeframe 365, got %d", snap.Policies[1].Timeframe)
	}

	if !snap.SourceModTime.Equal(base) {
		t.Errorf("Expected source mod time %v, got %v", base, snap.SourceModTime)
	}
	if snap.LoadedAt.IsZero() {
		t.Error("Expected LoadedAt to be set")
	}
}

func TestLoadSnapshotHeaderOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSource(t, dir, productsFile, "id,name,brand,category,price,description,stock,rating\n")
	writeSource(t, dir, reviewsFile, "product_id,rating,text,date\n")
	writeSource(t, dir, policiesFile, "policy_type,description,conditions,timeframe\n")

	snap, err := loadSnapshot(dir)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if len(snap.Products) != 0 || len(snap.Reviews) != 0 || len(snap.Policies) != 0 {
		t.Errorf("Expected empty catalog, got %d/%d/%d",
			len(snap.Products), len(snap.Reviews), len(snap.Policies))
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir)
	if err := os.Remove(filepath.Join(dir, reviewsFile)); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSnapshot(dir); err == nil {
		t.Fatal("Expected error for missing reviews.csv")
	}
}

func TestLoadSnapshotBadData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name: "malformed price",
			file: productsFile,
			content: "id,name,brand,category,price,description,stock,rating\n" +
				"LT1001,UltraBook,Lenora,laptop,not-a-number,desc,5,4.5\n",
			wantErr: "invalid price",
		},
		{
			name: "malformed stock",
			file: productsFile,
			content: "id,name,brand,category,price,description,stock,rating\n" +
				"LT1001,UltraBook,Lenora,laptop,999.99,desc,many,4.5\n",
			wantErr: "invalid stock",
		},
		{
			name: "malformed review rating",
			file: reviewsFile,
			content: "product_id,rating,text,date\n" +
				"LT1001,five,Great,2026-01-15\n",
			wantErr: "invalid rating",
		},
		{
			name: "malformed review date",
			file: reviewsFile,
			content: "product_id,rating,text,date\n" +
				"LT1001,5,Great,15/01/2026\n",
			wantErr: "invalid date",
		},
		{
			name: "malformed timeframe",
			file: policiesFile,
			content: "policy_type,description,conditions,timeframe\n" +
				"returns,Laptop Return Policy,Original packaging,soon\n",
			wantErr: "invalid timeframe",
		},
		{
			name:    "missing column",
			file:    productsFile,
			content: "id,name,brand,category,price,description,stock\nLT1001,U,L,laptop,1,d,5\n",
			wantErr: `missing column "rating"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFixture(t, dir)
			writeSource(t, dir, tt.file, tt.content)

			_, err := loadSnapshot(dir)
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLoadSnapshotEmptyDateAllowed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir)
	writeSource(t, dir, reviewsFile, "product_id,rating,text,date\nLT1001,5,Great,\n")

	snap, err := loadSnapshot(dir)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if snap.Reviews[0].Date != "" {
		t.Errorf("Expected empty date, got %q", snap.Reviews[0].Date)
	}
}

func TestSplitConditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"multiple", "Original packaging|Proof of purchase", []string{"Original packaging", "Proof of purchase"}},
		{"single", "Covers manufacturing defects", []string{"Covers manufacturing defects"}},
		{"whitespace trimmed", " a | b ", []string{"a", "b"}},
		{"empty segments dropped", "a||b|", []string{"a", "b"}},
		{"empty cell", "", []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := splitConditions(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitConditions(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
