/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package digest

import (
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/commonerrors/errortest"
)

func TestParseSet(t *testing.T) {
	tests := []struct {
		selection string
		expected  []Algorithm
	}{
		{selection: "", expected: []Algorithm{MD5, SHA1}},
		{selection: "MD5", expected: []Algorithm{MD5}},
		{selection: "SHA1", expected: []Algorithm{SHA1}},
		{selection: "MD5,SHA1", expected: []Algorithm{MD5, SHA1}},
		{selection: "SHA1 MD5", expected: []Algorithm{MD5, SHA1}},
		{selection: "please enable MD5", expected: []Algorithm{MD5}},
		{selection: "MD5MD5MD5", expected: []Algorithm{MD5}},
		{selection: "SHA256", expected: []Algorithm{SHA256}},
		{selection: "SHA512,BLAKE2b", expected: []Algorithm{Blake2b, SHA512}},
		{selection: "xxhash and Murmur", expected: []Algorithm{Murmur, XXHash}},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("%v_[%v]", i, test.selection), func(t *testing.T) {
			set, err := ParseSet(test.selection)
			require.NoError(t, err)
			assert.Equal(t, test.expected, set.List())
		})
	}
}

func TestParseSetInvalidSelection(t *testing.T) {
	tests := []string{"md5", "sha1", "   ", "MD-5", "SHA-1", "Sha1 Md5", faker.Word()}
	for i := range tests {
		selection := tests[i]
		t.Run(fmt.Sprintf("%v_[%v]", i, selection), func(t *testing.T) {
			set, err := ParseSet(selection)
			errortest.AssertError(t, err, commonerrors.ErrInvalid)
			assert.Zero(t, set.Len())
		})
	}
}

func TestParseSetIsPure(t *testing.T) {
	registered := len(Registered())
	first, err := ParseSet("MD5,SHA1")
	require.NoError(t, err)
	second, err := ParseSet("MD5,SHA1")
	require.NoError(t, err)
	assert.Equal(t, first.List(), second.List())
	assert.Equal(t, registered, len(Registered()))
}

func TestNewSet(t *testing.T) {
	set, err := NewSet(SHA1, MD5, SHA1)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(MD5))
	assert.True(t, set.Contains(SHA1))
	assert.False(t, set.Contains(SHA512))
	assert.Equal(t, "[MD5, SHA1]", set.String())
}

func TestNewSetInvalid(t *testing.T) {
	_, err := NewSet()
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	_, err = NewSet(Algorithm(faker.Word()))
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestSetZeroValue(t *testing.T) {
	var set Set
	assert.Zero(t, set.Len())
	assert.False(t, set.Contains(MD5))
	assert.Empty(t, set.List())
	assert.Equal(t, "[]", set.String())
}

func TestDefaultAlgorithms(t *testing.T) {
	assert.Equal(t, []Algorithm{MD5, SHA1}, DefaultAlgorithms())
}
