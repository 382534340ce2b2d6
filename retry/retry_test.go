/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/commonerrors/errortest"
	"github.com/evidencelab/hashcalc/logs/logstest"
)

func TestRetryOnErrorEventualSuccess(t *testing.T) {
	attempts := 0
	err := RetryOnError(context.Background(), logstest.NewTestLogger(t), DefaultBasicRetryPolicyConfiguration(), func() error {
		attempts++
		if attempts < 3 {
			return commonerrors.New(commonerrors.ErrIO, "transient failure")
		}
		return nil
	}, "retrying flaky operation", commonerrors.ErrIO)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryOnErrorExhaustion(t *testing.T) {
	attempts := 0
	err := RetryOnError(context.Background(), logstest.NewTestLogger(t), DefaultBasicRetryPolicyConfiguration(), func() error {
		attempts++
		return commonerrors.New(commonerrors.ErrIO, "persistent failure")
	}, "retrying doomed operation", commonerrors.ErrIO)
	errortest.AssertError(t, err, commonerrors.ErrIO)
	assert.Equal(t, 4, attempts)
}

func TestRetryOnErrorNonRetriable(t *testing.T) {
	attempts := 0
	err := RetryOnError(context.Background(), logstest.NewTestLogger(t), DefaultBasicRetryPolicyConfiguration(), func() error {
		attempts++
		return commonerrors.New(commonerrors.ErrNotFound, "no such item")
	}, "retrying", commonerrors.ErrIO)
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
	// A non retriable failure must not be attempted again.
	assert.Equal(t, 1, attempts)
}

func TestRetryDisabledPolicy(t *testing.T) {
	attempts := 0
	err := RetryOnError(context.Background(), logstest.NewTestLogger(t), DefaultNoRetryPolicyConfiguration(), func() error {
		attempts++
		return commonerrors.New(commonerrors.ErrIO, "failure")
	}, "retrying", commonerrors.ErrIO)
	errortest.AssertError(t, err, commonerrors.ErrIO)
	assert.Equal(t, 1, attempts)
}

func TestRetryMissingPolicy(t *testing.T) {
	err := RetryOnError(context.Background(), logstest.NewTestLogger(t), nil, func() error { return nil }, "retrying", commonerrors.ErrIO)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestRetryCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := DefaultBasicRetryPolicyConfiguration()
	policy.RetryWaitMin = 50 * time.Millisecond
	attempts := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := RetryOnError(ctx, logstest.NewTestLogger(t), policy, func() error {
		attempts++
		return commonerrors.New(commonerrors.ErrIO, "failure")
	}, "retrying", commonerrors.ErrIO)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	assert.LessOrEqual(t, attempts, 2)
}
