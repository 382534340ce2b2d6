/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizes(t *testing.T) {
	sizes := []int{B, KiB, MiB, GiB, TiB}
	for i := range sizes {
		if i > 0 {
			assert.Equal(t, sizes[i], 1024*sizes[i-1])
		}
	}
	assert.Equal(t, 1, B)
	assert.Equal(t, 1<<10, KiB)
	assert.Equal(t, 1<<20, MiB)
	assert.Equal(t, 1<<30, GiB)
	assert.Equal(t, 10<<30, 10*GiB)
}
