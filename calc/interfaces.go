/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package calc implements the content hashing module: each content item is streamed
// exactly once through the enabled digest algorithms and the resulting digests are
// recorded back onto the item.
package calc

import (
	"github.com/evidencelab/hashcalc/digest"
)

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/evidencelab/hashcalc/$GOPACKAGE ContentItem

// ContentItem is a piece of content the module can hash. Implementations are not
// expected to be thread-safe: an item is handled by one module run at a time.
type ContentItem interface {
	// Path returns the identifier of the item, used in logs and reports.
	Path() string
	// Exists states whether the item's content exists.
	Exists() bool
	// Open prepares the content for reading.
	Open() error
	// Read reads up to len(p) bytes of content into p following the io.Reader
	// contract. It is only called between Open and Close.
	Read(p []byte) (n int, err error)
	// Close releases the content. The module calls it exactly once for every item
	// it managed to open.
	Close() error
	// SetHash records the digest an algorithm computed over the content, as a
	// lowercase hexadecimal string.
	SetHash(algo digest.Algorithm, hexDigest string) error
}
