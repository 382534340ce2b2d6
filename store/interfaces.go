/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package store persists the digests computed for content items so that results
// survive the run which produced them. The hashing module itself never talks to a
// store: hosts persist the results it reports.
package store

import (
	"context"
	"io"

	"github.com/evidencelab/hashcalc/digest"
)

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/evidencelab/hashcalc/$GOPACKAGE HashStore

// Record is one persisted digest.
type Record struct {
	// ID uniquely identifies the record.
	ID string
	// Path identifies the content item the digest was computed for.
	Path string
	// Algorithm is the identifier of the algorithm which produced the digest.
	Algorithm digest.Algorithm
	// HexDigest is the lowercase hexadecimal encoding of the digest bytes.
	HexDigest string
}

// HashStore persists digests keyed by content item path and algorithm.
type HashStore interface {
	io.Closer
	// SaveHash records the digest an algorithm computed for the item at path.
	// Saving a new digest for the same (path, algorithm) pair replaces the
	// previous value.
	SaveHash(ctx context.Context, path string, algo digest.Algorithm, hexDigest string) error
	// GetHashes returns the digests recorded for the item at path, keyed by
	// algorithm. An item without records yields an empty map, not an error.
	GetHashes(ctx context.Context, path string) (map[digest.Algorithm]string, error)
}
