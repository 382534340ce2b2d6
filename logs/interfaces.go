/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import "io"

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/evidencelab/hashcalc/$GOPACKAGE Loggers,WriterWithSource

type Loggers interface {
	io.Closer
	// Checks whether the loggers are correctly defined or not.
	Check() error
	// Sets the source of the log message e.g. related item, related command, etc.
	SetLogSource(source string) error
	// Sets the source of the logger e.g. APIs, pipeline worker, CLI.
	SetLoggerSource(source string) error
	// Logs to the output logger.
	Log(output ...interface{})
	// Logs to the Error logger.
	LogError(err ...interface{})
}

type WriterWithSource interface {
	io.WriteCloser
	SetSource(source string) error
}
