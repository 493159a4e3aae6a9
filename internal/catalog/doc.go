// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package catalog loads the product catalog from CSV sources and serves it
// as immutable in-memory snapshots.
//
// The Store is the single owner of catalog state. It loads lazily on first
// access and afterwards trusts a snapshot for a configurable staleness
// window (30 seconds by default). Once the window elapses the next reader
// compares source file modification times and triggers a reload only when
// they changed, so a quiet data directory costs three stat calls per window
// and nothing more.
//
// Snapshots are swapped atomically. A reload builds the complete new
// snapshot off to the side and publishes it in one pointer store; concurrent
// readers keep the snapshot they already hold and never observe a partially
// loaded catalog. When a reload fails the previous snapshot stays in place
// and the window restarts, which bounds retry pressure against a broken
// data directory.
package catalog
