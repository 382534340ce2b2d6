/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package calc

import (
	"context"
	"fmt"

	"github.com/dolmen-go/contextio"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/digest"
	"github.com/evidencelab/hashcalc/logs"
	"github.com/evidencelab/hashcalc/safeio"
)

// Module computes content digests. The algorithm selection is parsed once at
// construction; the module can then hash any number of items, concurrently if need
// be: every run owns its read buffer and its accumulators and never mutates the
// module.
type Module struct {
	algorithms digest.Set
	chunkSize  int
	lenient    bool
	loggers    logs.Loggers
}

// NewModule creates a hashing module. The configuration is validated and the
// algorithm selection parsed here, so that an unusable configuration fails before
// any item is looked at.
func NewModule(loggers logs.Loggers, cfg *Configuration) (*Module, error) {
	if loggers == nil {
		return nil, commonerrors.ErrNoLogger
	}
	if cfg == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing configuration")
	}
	err := cfg.Validate()
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid configuration")
	}
	algorithms, err := digest.ParseSet(cfg.Algorithms)
	if err != nil {
		return nil, err
	}
	return &Module{
		algorithms: algorithms,
		chunkSize:  cfg.ChunkSize,
		lenient:    cfg.LenientRead,
		loggers:    loggers,
	}, nil
}

// Algorithms returns the set of algorithms the module computes.
func (m *Module) Algorithms() digest.Set {
	return m.algorithms
}

// Run streams the item's content through every enabled algorithm and records the
// resulting digests on the item. On failure the returned error states what went
// wrong (ErrUndefined for an unusable item, ErrNotFound for missing content, ErrIO
// for open/read/close failures, ErrUnexpected otherwise) and the result carries no
// digest. An item which was opened is closed exactly once, whatever the path out of
// the run.
func (m *Module) Run(ctx context.Context, item ContentItem) (result Result, err error) {
	if item == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "no content item to hash")
		m.loggers.LogError(err)
		return
	}
	path := item.Path()
	result.Path = path

	// A panicking collaborator or algorithm must not take the whole batch down.
	defer func() {
		if recovered := recover(); recovered != nil {
			result = Result{Path: path}
			err = commonerrors.Newf(commonerrors.ErrUnexpected, "hashing of [%v] panicked: %v", path, recovered)
			m.loggers.LogError(err)
		}
	}()

	err = commonerrors.ErrFromContext(ctx)
	if err != nil {
		m.loggers.LogError(fmt.Sprintf("hashing of [%v] aborted: %v", path, err))
		return
	}

	if !item.Exists() {
		err = commonerrors.Newf(commonerrors.ErrNotFound, "content of [%v] does not exist", path)
		m.loggers.LogError(err)
		return
	}

	err = item.Open()
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrIO, err, "could not open [%v]", path)
		m.loggers.LogError(err)
		return
	}
	defer func() {
		closeErr := item.Close()
		if closeErr == nil {
			return
		}
		closeErr = commonerrors.WrapErrorf(commonerrors.ErrIO, closeErr, "could not close [%v]", path)
		m.loggers.LogError(closeErr)
		if err == nil {
			result = Result{Path: path}
			err = closeErr
		}
	}()

	accumulators, err := digest.NewAccumulators(m.algorithms)
	if err != nil {
		m.loggers.LogError(fmt.Sprintf("could not set up the digest computations for [%v]: %v", path, err))
		return
	}

	var observed int64
	buffer := make([]byte, m.chunkSize)
	reader := contextio.NewReader(ctx, item)
	for {
		n, readErr := reader.Read(buffer)
		if n > 0 {
			observed += int64(n)
			for i := range accumulators {
				_, _ = accumulators[i].Write(buffer[:n])
			}
		}
		if readErr == nil {
			continue
		}
		readErr = safeio.ConvertIOError(readErr)
		if commonerrors.Any(readErr, commonerrors.ErrEOF) {
			break
		}
		if commonerrors.Any(readErr, commonerrors.ErrCancelled, commonerrors.ErrTimeout) {
			err = readErr
			m.loggers.LogError(fmt.Sprintf("hashing of [%v] aborted: %v", path, err))
			return
		}
		if m.lenient {
			// Legacy behaviour: the digests cover whatever was read so far.
			m.loggers.LogError(fmt.Sprintf("read failure on [%v] treated as end of content: %v", path, readErr))
			break
		}
		err = commonerrors.WrapErrorf(commonerrors.ErrIO, readErr, "could not read [%v]", path)
		m.loggers.LogError(err)
		return
	}

	if observed == 0 {
		return
	}

	digests := make(map[digest.Algorithm]string, len(accumulators))
	for i := range accumulators {
		algo := accumulators[i].Algorithm()
		hexDigest := accumulators[i].Sum()
		setErr := item.SetHash(algo, hexDigest)
		if setErr != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, setErr, "could not record the %v digest of [%v]", algo, path)
			m.loggers.LogError(err)
			return
		}
		digests[algo] = hexDigest
	}
	result.Bytes = observed
	result.Digests = digests
	return
}

// Close completes the module's lifecycle. The module holds no resources; Close
// exists so hosts can finalise modules uniformly.
func (m *Module) Close() error {
	return nil
}
