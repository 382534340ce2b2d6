/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"io"
	"log"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

type logrusLoggers struct {
	GenericLoggers
	writers []io.WriteCloser
}

// Close releases the level writers so the goroutines logrus spawned for them
// terminate.
func (l *logrusLoggers) Close() (err error) {
	var group *multierror.Error
	for i := range l.writers {
		group = multierror.Append(group, l.writers[i].Close())
	}
	group = multierror.Append(group, l.GenericLoggers.Close())
	err = group.ErrorOrNil()
	return
}

// NewLogrusLogger creates loggers based on a logrus logger (https://github.com/sirupsen/logrus)
func NewLogrusLogger(logrusL *logrus.Logger, loggerSource string) (loggers Loggers, err error) {
	outWriter := logrusL.WriterLevel(logrus.InfoLevel)
	errWriter := logrusL.WriterLevel(logrus.ErrorLevel)
	loggers = &logrusLoggers{
		GenericLoggers: GenericLoggers{
			Output: log.New(outWriter, fmt.Sprintf("[%v] ", loggerSource), log.LstdFlags),
			Error:  log.New(errWriter, fmt.Sprintf("[%v] ", loggerSource), log.LstdFlags),
		},
		writers: []io.WriteCloser{outWriter, errWriter},
	}
	return
}
