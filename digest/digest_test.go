/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package digest

import (
	"crypto/md5"
	"fmt"
	"hash"
	"hash/fnv"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/commonerrors/errortest"
)

func TestAccumulatorKnownValues(t *testing.T) {
	// values given by https://md5calc.com/hash and the RFC 3174 / FIPS 180-2 vectors
	tests := []struct {
		algo     Algorithm
		input    string
		expected string
	}{
		{algo: MD5, input: "test", expected: "098f6bcd4621d373cade4e832627b4f6"},
		{algo: MD5, input: "", expected: "d41d8cd98f00b204e9800998ecf8427e"},
		{algo: SHA1, input: "", expected: "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{algo: SHA1, input: "abc", expected: "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{algo: SHA256, input: "abc", expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{algo: SHA512, input: "abc", expected: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("%v_%v(%v)", i, test.algo, test.input), func(t *testing.T) {
			accumulator, err := NewAccumulator(test.algo)
			require.NoError(t, err)
			_, err = accumulator.Write([]byte(test.input))
			require.NoError(t, err)
			assert.Equal(t, test.expected, accumulator.Sum())
		})
	}
}

func TestAccumulatorDigestShape(t *testing.T) {
	content := []byte(faker.Paragraph())
	for _, algo := range Registered() {
		t.Run(string(algo), func(t *testing.T) {
			accumulator, err := NewAccumulator(algo)
			require.NoError(t, err)
			_, err = accumulator.Write(content)
			require.NoError(t, err)
			sum := accumulator.Sum()
			assert.Len(t, sum, 2*accumulator.Size())
			assert.Equal(t, strings.ToLower(sum), sum)
			assert.Regexp(t, "^[0-9a-f]+$", sum)
		})
	}
}

func TestAccumulatorChunkIndependence(t *testing.T) {
	content := []byte(faker.Paragraph() + faker.Paragraph())
	reference, err := NewAccumulator(SHA1)
	require.NoError(t, err)
	_, err = reference.Write(content)
	require.NoError(t, err)
	expected := reference.Sum()

	for _, chunkSize := range []int{1, 7, 64, 8192} {
		t.Run(fmt.Sprintf("chunks_of_%v", chunkSize), func(t *testing.T) {
			accumulator, err := NewAccumulator(SHA1)
			require.NoError(t, err)
			for start := 0; start < len(content); start += chunkSize {
				end := start + chunkSize
				if end > len(content) {
					end = len(content)
				}
				_, err = accumulator.Write(content[start:end])
				require.NoError(t, err)
			}
			assert.Equal(t, expected, accumulator.Sum())
		})
	}
}

func TestAccumulatorDeterminism(t *testing.T) {
	content := []byte(faker.Sentence())
	sums := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		accumulator, err := NewAccumulator(MD5)
		require.NoError(t, err)
		_, err = accumulator.Write(content)
		require.NoError(t, err)
		sums = append(sums, accumulator.Sum())
	}
	assert.Equal(t, sums[0], sums[1])
	assert.Equal(t, sums[1], sums[2])
}

func TestNewAccumulatorUnknownAlgorithm(t *testing.T) {
	accumulator, err := NewAccumulator(Algorithm(faker.Word()))
	assert.Nil(t, accumulator)
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)
}

func TestNewAccumulators(t *testing.T) {
	set, err := NewSet(SHA1, MD5)
	require.NoError(t, err)
	accumulators, err := NewAccumulators(set)
	require.NoError(t, err)
	require.Len(t, accumulators, 2)
	assert.Equal(t, MD5, accumulators[0].Algorithm())
	assert.Equal(t, SHA1, accumulators[1].Algorithm())

	_, err = NewAccumulators(Set{})
	errortest.AssertError(t, err, commonerrors.ErrEmpty)
}

func TestRegister(t *testing.T) {
	t.Run("missing identifier", func(t *testing.T) {
		err := Register("", func() (hash.Hash, error) { return fnv.New32a(), nil })
		errortest.AssertError(t, err, commonerrors.ErrInvalid)
	})
	t.Run("missing factory", func(t *testing.T) {
		err := Register("FNV32a", nil)
		errortest.AssertError(t, err, commonerrors.ErrUndefined)
	})
	t.Run("already registered", func(t *testing.T) {
		err := Register(MD5, func() (hash.Hash, error) { return md5.New(), nil })
		errortest.AssertError(t, err, commonerrors.ErrExists)
	})
	t.Run("bespoke algorithm", func(t *testing.T) {
		require.False(t, Supported("FNV32a"))
		require.NoError(t, Register("FNV32a", func() (hash.Hash, error) { return fnv.New32a(), nil }))
		assert.True(t, Supported("FNV32a"))
		assert.Contains(t, Registered(), Algorithm("FNV32a"))
		accumulator, err := NewAccumulator("FNV32a")
		require.NoError(t, err)
		_, err = accumulator.Write([]byte(faker.Word()))
		require.NoError(t, err)
		assert.Len(t, accumulator.Sum(), 8)
	})
}
