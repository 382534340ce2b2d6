/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package size defines common binary size units.
package size

const (
	B = 1 << (10 * iota)
	KiB
	MiB
	GiB
	TiB
)
