/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config provides the loading of service configurations from the
// environment, with defaults and validation.
package config

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/evidencelab/hashcalc/$GOPACKAGE IServiceConfiguration

// Validator is implemented by configuration structures which can validate their
// entries.
type Validator interface {
	// Validates configuration entries.
	Validate() error
}

type IServiceConfiguration interface {
	Validator
}
