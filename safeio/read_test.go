/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package safeio

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/commonerrors/errortest"
)

func TestReadAll(t *testing.T) {
	content := faker.Paragraph()
	read, err := ReadAll(context.Background(), strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, content, string(read))
}

func TestReadAllEmpty(t *testing.T) {
	read, err := ReadAll(context.Background(), bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, read)
}

func TestReadAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadAll(ctx, strings.NewReader(faker.Paragraph()))
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
}

func TestReadAtMost(t *testing.T) {
	content := faker.Paragraph()
	t.Run("truncated", func(t *testing.T) {
		read, err := ReadAtMost(context.Background(), strings.NewReader(content), 5, -1)
		require.NoError(t, err)
		assert.Equal(t, content[:5], string(read))
	})
	t.Run("whole content", func(t *testing.T) {
		read, err := ReadAtMost(context.Background(), strings.NewReader(content), int64(len(content)+10), -1)
		require.NoError(t, err)
		assert.Equal(t, content, string(read))
	})
	t.Run("nothing", func(t *testing.T) {
		read, err := ReadAtMost(context.Background(), strings.NewReader(content), 0, -1)
		require.NoError(t, err)
		assert.Empty(t, read)
	})
}
