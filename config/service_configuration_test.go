/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/commonerrors/errortest"
)

type dummyStoreConfiguration struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *dummyStoreConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Host, validation.Required),
		validation.Field(&cfg.Port, validation.Required),
	)
}

type dummyConfiguration struct {
	Workers int                     `mapstructure:"workers"`
	Store   dummyStoreConfiguration `mapstructure:"store"`
}

func (cfg *dummyConfiguration) Validate() error {
	err := ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Workers, validation.Required, validation.Min(1)),
	)
}

func defaultDummyConfiguration() *dummyConfiguration {
	return &dummyConfiguration{
		Workers: 4,
		Store: dummyStoreConfiguration{
			Host: "localhost",
			Port: 5432,
		},
	}
}

func TestLoadFromDefaults(t *testing.T) {
	cfg := &dummyConfiguration{}
	err := Load("HASHCALCTEST", cfg, defaultDummyConfiguration())
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "localhost", cfg.Store.Host)
	assert.Equal(t, 5432, cfg.Store.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	host := faker.Word()
	t.Setenv("HASHCALCTEST_WORKERS", "12")
	t.Setenv("HASHCALCTEST_STORE_HOST", host)

	cfg := &dummyConfiguration{}
	err := Load("HASHCALCTEST", cfg, defaultDummyConfiguration())
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Workers)
	assert.Equal(t, host, cfg.Store.Host)
	assert.Equal(t, 5432, cfg.Store.Port)
}

func TestLoadValidationFailure(t *testing.T) {
	defaults := defaultDummyConfiguration()
	defaults.Store.Port = 0

	cfg := &dummyConfiguration{}
	err := Load("HASHCALCTESTINVALID", cfg, defaults)
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	assert.Contains(t, err.Error(), "Store")
}

func TestBindFlagToEnv(t *testing.T) {
	session := viper.New()
	flagSet := pflag.NewFlagSet(fmt.Sprintf("test-%v", faker.Word()), pflag.ContinueOnError)
	flagSet.Int("workers", 8, "number of workers")
	require.NoError(t, flagSet.Parse([]string{"--workers=16"}))

	err := BindFlagToEnv(session, "HASHCALCTESTFLAG", "HASHCALCTESTFLAG_WORKERS", flagSet.Lookup("workers"))
	require.NoError(t, err)

	cfg := &dummyConfiguration{}
	err = LoadFromViper(session, "HASHCALCTESTFLAG", cfg, defaultDummyConfiguration())
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Workers)
}
