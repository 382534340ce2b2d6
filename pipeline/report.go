/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package pipeline

import (
	"time"

	"github.com/evidencelab/hashcalc/calc"
)

// Report is the outcome of processing one content item within a run.
type Report struct {
	calc.Result
	// Status classifies the outcome.
	Status calc.Status
	// Duration is the time spent on the item, retries included.
	Duration time.Duration
	// Err is the failure the item ended with, nil on success.
	Err error
}

// Summary aggregates the reports of one run. Reports keep the order the items were
// submitted in, whatever order the workers finished in.
type Summary struct {
	// RunID uniquely identifies the run.
	RunID string
	// Duration is the wall-clock time of the whole run.
	Duration time.Duration
	// Reports holds one report per submitted item.
	Reports []Report
}

// Succeeded returns the number of items processed successfully, zero-byte items
// included.
func (s *Summary) Succeeded() (count int) {
	for i := range s.Reports {
		if s.Reports[i].Status == calc.StatusOK {
			count++
		}
	}
	return
}

// Failed returns the number of items which could not be processed.
func (s *Summary) Failed() int {
	return len(s.Reports) - s.Succeeded()
}

// HasFailures states whether any item failed.
func (s *Summary) HasFailures() bool {
	return s.Failed() > 0
}

// Bytes returns the total number of content bytes hashed during the run.
func (s *Summary) Bytes() (total int64) {
	for i := range s.Reports {
		total += s.Reports[i].Bytes
	}
	return
}
