/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package pipeline runs the hashing module over batches of content items with a
// bounded pool of workers. Item failures never abort a batch: every item ends up
// with a report and the caller decides what to do with the failed ones.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/evidencelab/hashcalc/calc"
	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/digest"
	"github.com/evidencelab/hashcalc/idgen"
	"github.com/evidencelab/hashcalc/logs"
	"github.com/evidencelab/hashcalc/retry"
	"github.com/evidencelab/hashcalc/store"
)

// Executor processes batches of content items with the hashing module.
type Executor struct {
	module      *calc.Module
	hashStore   store.HashStore
	loggers     logs.Loggers
	retryLogger logr.Logger
	cfg         *Configuration
}

// NewExecutor creates an executor running module over the configured number of
// workers. hashStore may be nil, in which case digests are only reported, not
// persisted.
func NewExecutor(loggers logs.Loggers, cfg *Configuration, module *calc.Module, hashStore store.HashStore) (*Executor, error) {
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
	if module == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing hashing module")
	}
	return &Executor{
		module:      module,
		hashStore:   hashStore,
		loggers:     loggers,
		retryLogger: logs.NewLogrLoggerFromLoggers(loggers),
		cfg:         cfg,
	}, nil
}

// Process hashes every item of the batch and returns one report per item, in
// submission order. The returned error only reflects the batch being aborted
// (cancellation or timeout); per-item failures are reported in the summary.
// progress may be nil; when set it is called once per completed item, possibly
// from concurrent workers.
func (e *Executor) Process(ctx context.Context, items []calc.ContentItem, progress func(Report)) (summary *Summary, err error) {
	runID, err := idgen.GenerateUUID4()
	if err != nil {
		return
	}
	start := time.Now()
	reports := make([]Report, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i := range items {
		i := i // per-iteration copy: required for correctness on Go < 1.22 toolchains
		g.Go(func() error {
			reports[i] = e.processItem(gCtx, items[i])
			if progress != nil {
				progress(reports[i])
			}
			return nil
		})
	}
	// Workers never return errors: a failed item is a report, not a batch failure.
	_ = g.Wait()

	summary = &Summary{
		RunID:    runID,
		Duration: time.Since(start),
		Reports:  reports,
	}
	err = commonerrors.ErrFromContext(ctx)
	return
}

func (e *Executor) processItem(ctx context.Context, item calc.ContentItem) Report {
	start := time.Now()
	var result calc.Result
	run := func() error {
		runResult, runErr := e.module.Run(ctx, item)
		result = runResult
		return runErr
	}

	var err error
	if e.cfg.Retry.Enabled && item != nil {
		// Retrying a missing or invalid item cannot help; I/O and unexpected
		// failures may be transient.
		err = retry.RetryOnError(ctx, e.retryLogger, &e.cfg.Retry, run,
			fmt.Sprintf("re-attempting the hashing of [%v]", item.Path()),
			commonerrors.ErrIO, commonerrors.ErrUnexpected)
	} else {
		err = run()
	}

	if err == nil && e.hashStore != nil && !result.Empty() {
		err = e.persist(ctx, result)
		if err != nil {
			result = calc.Result{Path: result.Path}
		}
	}

	return Report{
		Result:   result,
		Status:   calc.StatusFromError(err),
		Duration: time.Since(start),
		Err:      err,
	}
}

// persist saves the digests of a successfully hashed item. The first failing save
// aborts the item so that the store never holds a partially recorded run for it.
func (e *Executor) persist(ctx context.Context, result calc.Result) error {
	algos := make([]digest.Algorithm, 0, len(result.Digests))
	for algo := range result.Digests {
		algos = append(algos, algo)
	}
	sort.Slice(algos, func(i, j int) bool { return algos[i] < algos[j] })
	for _, algo := range algos {
		err := e.hashStore.SaveHash(ctx, result.Path, algo, result.Digests[algo])
		if err != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not persist the %v digest of [%v]", algo, result.Path)
			e.loggers.LogError(err)
			return err
		}
	}
	return nil
}
