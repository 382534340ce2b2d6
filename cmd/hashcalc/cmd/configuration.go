/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/evidencelab/hashcalc/calc"
	"github.com/evidencelab/hashcalc/config"
	configvalidation "github.com/evidencelab/hashcalc/config/validation"
	"github.com/evidencelab/hashcalc/pipeline"
)

// EnvVarPrefix is the prefix of the environment variables the command reads its
// configuration from, e.g. HASHCALC_HASHING_ALGORITHMS.
const EnvVarPrefix = "HASHCALC"

// Configuration gathers everything the command needs: how to hash items, how to run
// the batch and where to persist the digests.
type Configuration struct {
	Hashing  calc.Configuration     `mapstructure:"hashing"`
	Pipeline pipeline.Configuration `mapstructure:"pipeline"`
	// DatabaseURL points at the PostgreSQL database digests are persisted in.
	// When empty, digests are only reported, not persisted.
	DatabaseURL string `mapstructure:"database_url"`
}

func (cfg *Configuration) Validate() error {
	// Validate embedded structs
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.DatabaseURL, configvalidation.IsDatabaseURL()),
	)
}

// DefaultConfiguration returns the command defaults: MD5 and SHA-1 over 8 KiB
// chunks, one worker per CPU, no retries and no persistence.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Hashing:     *calc.DefaultConfiguration(),
		Pipeline:    *pipeline.DefaultConfiguration(),
		DatabaseURL: "",
	}
}
