/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package safeio provides I/O helpers which react to context cancellation and
// report failures as common errors.
package safeio

import (
	"io"

	"github.com/evidencelab/hashcalc/commonerrors"
)

// ConvertIOError converts an I/O error into common errors: context cancellations
// become ErrCancelled/ErrTimeout and end-of-file conditions become ErrEOF.
func ConvertIOError(err error) (newErr error) {
	if err == nil {
		return
	}
	newErr = commonerrors.ConvertContextError(err)
	switch {
	case commonerrors.Any(newErr, commonerrors.ErrEOF):
	case commonerrors.Any(newErr, io.EOF, io.ErrUnexpectedEOF):
		newErr = commonerrors.WrapError(commonerrors.ErrEOF, newErr, "")
	}
	return
}
