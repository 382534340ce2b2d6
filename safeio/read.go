/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safeio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dolmen-go/contextio"

	"github.com/evidencelab/hashcalc/commonerrors"
)

// ReadAll reads the whole content of src similarly to io.ReadAll but with context
// control to stop when asked to.
func ReadAll(ctx context.Context, src io.Reader) ([]byte, error) {
	return ReadAtMost(ctx, src, -1, -1)
}

// ReadAtMost reads the content of src and at most max bytes.
// If bufferCapacity is negative it defaults to max; if max is negative the entirety
// of the reader is read.
func ReadAtMost(ctx context.Context, src io.Reader, max int64, bufferCapacity int64) (content []byte, err error) {
	if bufferCapacity < 0 {
		if max < 0 {
			bufferCapacity = bytes.MinRead
		} else {
			bufferCapacity = max
		}
	}
	err = commonerrors.ErrFromContext(ctx)
	if err != nil {
		return
	}

	buf := bytes.NewBuffer(make([]byte, 0, bufferCapacity))
	// If the buffer overflows, we will get bytes.ErrTooLarge.
	// Return that as an error. Any other panic remains.
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if panicErr, ok := e.(error); ok && panicErr == bytes.ErrTooLarge {
			err = fmt.Errorf("%w: %v", commonerrors.ErrTooLarge, panicErr.Error())
		} else {
			panic(e)
		}
	}()
	var reader io.Reader
	if max >= 0 {
		reader = io.LimitReader(src, max)
	} else {
		reader = src
	}
	_, err = buf.ReadFrom(contextio.NewReader(ctx, reader))
	err = ConvertIOError(err)
	if err != nil {
		return
	}
	content = buf.Bytes()
	return
}
