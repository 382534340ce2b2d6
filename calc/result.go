/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package calc

import (
	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/digest"
)

// Result is the outcome of hashing one content item. When Run returns an error the
// result only carries the path: digests are never reported for failed items.
type Result struct {
	// Path identifies the item the digests belong to.
	Path string
	// Bytes is the number of content bytes fed to the algorithms.
	Bytes int64
	// Digests maps each enabled algorithm to the lowercase hexadecimal digest of
	// the content. It is empty when the item has no content.
	Digests map[digest.Algorithm]string
}

// Empty states whether the result carries any digest.
func (r Result) Empty() bool {
	return len(r.Digests) == 0
}

// Status classifies the outcome of a module run for callers which report outcomes
// rather than inspect errors.
type Status int

const (
	// StatusOK means the item was processed successfully.
	StatusOK Status = iota
	// StatusInvalidInput means the item could not be processed at all, e.g. it was nil.
	StatusInvalidInput
	// StatusNotFound means the item's content does not exist.
	StatusNotFound
	// StatusIOError means opening, reading or closing the content failed.
	StatusIOError
	// StatusFail means an unexpected failure, including cancellations.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInvalidInput:
		return "INVALID_INPUT"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusIOError:
		return "IO_ERROR"
	case StatusFail:
		return "FAIL"
	}
	return "UNKNOWN"
}

// StatusFromError classifies an error returned by Run. Any error which does not
// belong to a more precise class, cancellations and timeouts included, is a
// StatusFail.
func StatusFromError(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case commonerrors.Any(err, commonerrors.ErrUndefined):
		return StatusInvalidInput
	case commonerrors.Any(err, commonerrors.ErrNotFound):
		return StatusNotFound
	case commonerrors.Any(err, commonerrors.ErrIO, commonerrors.ErrEOF):
		return StatusIOError
	default:
		return StatusFail
	}
}
