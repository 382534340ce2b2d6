/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUuidUniqueness(t *testing.T) {
	uuid1, err := GenerateUUID4()
	require.NoError(t, err)

	uuid2, err := GenerateUUID4()
	require.NoError(t, err)

	assert.NotEqual(t, uuid1, uuid2)
}

func TestUuidLength(t *testing.T) {
	uuid, err := GenerateUUID4()
	require.NoError(t, err)

	assert.Equal(t, 36, len(uuid))
	assert.True(t, IsValidUUID(uuid))
}
