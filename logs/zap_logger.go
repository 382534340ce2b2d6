/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/evidencelab/hashcalc/commonerrors"
)

const (
	syncError         = "invalid argument"             // sync error can happen on Linux (sync /dev/stderr: invalid argument) see https://github.com/uber-go/zap/issues/328
	syncErrorTerminal = "inappropriate ioctl for device" // same failure when stderr is a terminal
)

// NewZapLogger returns loggers which use a zap logger (https://github.com/uber-go/zap)
func NewZapLogger(zapL *zap.Logger, loggerSource string) (loggers Loggers, err error) {
	if zapL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLoggerWithClose(zapr.NewLogger(zapL), loggerSource, func() error {
		err := zapL.Sync()
		// handling this error https://github.com/uber-go/zap/issues/328
		if commonerrors.CorrespondTo(err, syncError, syncErrorTerminal) {
			return nil
		}
		return err
	})
}
