/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestStringLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)

	loggers.Log("Test output")
	loggers.LogError("Test err")

	content := loggers.GetLogContent()
	require.NotZero(t, content)
	assert.Contains(t, content, "Test output")
	assert.Contains(t, content, "Test err")

	require.NoError(t, loggers.Close())
	assert.Zero(t, loggers.GetLogContent())
}

func TestStringLoggerFullSequence(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
}
