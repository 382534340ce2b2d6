/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()
	require.NoError(t, cfg.Validate())
	assert.Positive(t, cfg.Workers)
	assert.False(t, cfg.Retry.Enabled)
}

func TestConfigurationValidation(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Workers = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfiguration()
	cfg.Workers = -2
	require.Error(t, cfg.Validate())

	cfg = DefaultConfiguration()
	cfg.Retry.Enabled = true
	cfg.Retry.RetryMax = -1
	cfg.Retry.BackOffEnabled = true
	require.Error(t, cfg.Validate())
}
