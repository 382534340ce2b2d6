/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package pipeline

import (
	"runtime"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/evidencelab/hashcalc/config"
	"github.com/evidencelab/hashcalc/retry"
)

// Configuration defines how a batch of content items is processed.
type Configuration struct {
	// Workers is the number of items hashed concurrently. Each worker owns its
	// read buffer and accumulators; workers share nothing but the module.
	Workers int `mapstructure:"workers"`
	// Retry defines whether and how failed items are re-attempted. Only I/O and
	// unexpected failures are retried; missing or invalid items never are.
	Retry retry.RetryPolicyConfiguration `mapstructure:"retry"`
}

func (cfg *Configuration) Validate() error {
	// Validate embedded structs
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Workers, validation.Required, validation.Min(1)),
	)
}

// DefaultConfiguration returns the executor defaults: one worker per CPU and no
// retries.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Workers: runtime.NumCPU(),
		Retry:   *retry.DefaultNoRetryPolicyConfiguration(),
	}
}
