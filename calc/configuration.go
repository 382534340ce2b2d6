/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package calc

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/evidencelab/hashcalc/config"
	configvalidation "github.com/evidencelab/hashcalc/config/validation"
	"github.com/evidencelab/hashcalc/units/size"
)

const (
	// DefaultChunkSize is the size in bytes of the read buffer used when none is
	// configured.
	DefaultChunkSize = 8 * size.KiB
	// MaxChunkSize bounds the read buffer: streaming exists to keep memory use
	// independent of content size, so buffers beyond this bound are rejected.
	MaxChunkSize = 16 * size.MiB
)

// Configuration defines the behaviour of the hashing module.
type Configuration struct {
	// Algorithms selects the digests to compute, e.g. "MD5,SHA1": every registered
	// algorithm whose identifier occurs in the string is enabled. An empty
	// selection enables MD5 and SHA-1.
	Algorithms string `mapstructure:"algorithms"`
	// ChunkSize is the size in bytes of the buffer content is streamed with.
	ChunkSize int `mapstructure:"chunk_size"`
	// LenientRead makes a failing read terminate the stream like an end of file
	// instead of aborting the item. It reproduces the behaviour of legacy
	// deployments and silently truncates content; leave it disabled unless
	// compatibility with results recorded by those deployments is required.
	LenientRead bool `mapstructure:"lenient_read"`
}

func (cfg *Configuration) Validate() error {
	// Validate embedded structs
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Algorithms, configvalidation.IsAlgorithmSelection()),
		validation.Field(&cfg.ChunkSize, validation.Required, validation.Min(1), validation.Max(MaxChunkSize)),
	)
}

// DefaultConfiguration returns the module defaults: MD5 and SHA-1 computed over
// 8 KiB chunks, strict reads.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Algorithms:  "",
		ChunkSize:   DefaultChunkSize,
		LenientRead: false,
	}
}
