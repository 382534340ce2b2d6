/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logrimp

import "github.com/go-logr/logr"

// NewNoopLogger returns a logger which discards everything.
func NewNoopLogger() logr.Logger {
	return logr.Discard()
}
