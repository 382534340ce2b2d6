/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"os"
)

// NewStdLogger creates loggers to standard output/error.
func NewStdLogger(loggerSource string) (loggers Loggers, err error) {
	loggers = &GenericLoggers{
		Output: log.New(os.Stdout, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
		Error:  log.New(os.Stderr, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
	}
	return
}

// CreateStdLogger creates loggers to standard output/error.
//
// Deprecated: Use NewStdLogger instead
func CreateStdLogger(loggerSource string) (loggers Loggers, err error) {
	return NewStdLogger(loggerSource)
}
