/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package digest provides the digest algorithms a content item can be hashed with.
// Algorithms are looked up by identifier in a registry so that supporting an extra
// algorithm only requires registering it; nothing in the read path changes.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"sort"
	"sync"

	"github.com/OneOfOne/xxhash"
	"github.com/spaolacci/murmur3"
	"golang.org/x/crypto/blake2b"

	"github.com/evidencelab/hashcalc/commonerrors"
)

// Algorithm identifies a digest algorithm. The identifier is also the exact string
// recorded next to any persisted digest value, so it must remain stable.
type Algorithm string

const (
	MD5     Algorithm = "MD5"
	SHA1    Algorithm = "SHA1"
	SHA256  Algorithm = "SHA256"
	SHA512  Algorithm = "SHA512"
	Blake2b Algorithm = "BLAKE2b"
	Murmur  Algorithm = "Murmur"
	XXHash  Algorithm = "xxhash"
)

// Factory creates a fresh hash state for one invocation.
type Factory func() (hash.Hash, error)

var (
	registryMu sync.RWMutex
	registry   = map[Algorithm]Factory{
		MD5:     func() (hash.Hash, error) { return md5.New(), nil },
		SHA1:    func() (hash.Hash, error) { return sha1.New(), nil },
		SHA256:  func() (hash.Hash, error) { return sha256.New(), nil },
		SHA512:  func() (hash.Hash, error) { return sha512.New(), nil },
		Blake2b: func() (hash.Hash, error) { return blake2b.New256(nil) },
		Murmur:  func() (hash.Hash, error) { return murmur3.New64(), nil },
		XXHash:  func() (hash.Hash, error) { return xxhash.New64(), nil },
	}
)

// Register adds an algorithm to the registry. Registration is expected to happen
// before any selection is parsed, typically from an init function.
func Register(algo Algorithm, factory Factory) error {
	if algo == "" {
		return commonerrors.New(commonerrors.ErrInvalid, "algorithm identifier must not be empty")
	}
	if factory == nil {
		return commonerrors.Newf(commonerrors.ErrUndefined, "missing factory for algorithm [%v]", algo)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, found := registry[algo]; found {
		return commonerrors.Newf(commonerrors.ErrExists, "algorithm [%v] is already registered", algo)
	}
	registry[algo] = factory
	return nil
}

// Supported states whether an algorithm is registered.
func Supported(algo Algorithm) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, found := registry[algo]
	return found
}

// Registered returns the identifiers of all registered algorithms, sorted.
func Registered() []Algorithm {
	registryMu.RLock()
	defer registryMu.RUnlock()
	algos := make([]Algorithm, 0, len(registry))
	for algo := range registry {
		algos = append(algos, algo)
	}
	sort.Slice(algos, func(i, j int) bool { return algos[i] < algos[j] })
	return algos
}

func factoryFor(algo Algorithm) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, found := registry[algo]
	if !found {
		return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "unknown algorithm [%v]", algo)
	}
	return factory, nil
}

// Accumulator holds the running state of one digest computation. An accumulator is
// owned by a single invocation: it is fed chunks through Write and consumed exactly
// once by Sum; it must not be shared between goroutines or reused afterwards.
type Accumulator struct {
	algo Algorithm
	h    hash.Hash
}

// NewAccumulator creates an accumulator for the given registered algorithm.
func NewAccumulator(algo Algorithm) (*Accumulator, error) {
	factory, err := factoryFor(algo)
	if err != nil {
		return nil, err
	}
	h, err := factory()
	if err != nil {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not initialise algorithm [%v]", algo)
	}
	return &Accumulator{algo: algo, h: h}, nil
}

// NewAccumulators creates one accumulator per algorithm in the set, in the set's
// sorted order.
func NewAccumulators(set Set) ([]*Accumulator, error) {
	algos := set.List()
	if len(algos) == 0 {
		return nil, commonerrors.New(commonerrors.ErrEmpty, "no algorithms to accumulate")
	}
	accumulators := make([]*Accumulator, 0, len(algos))
	for i := range algos {
		accumulator, err := NewAccumulator(algos[i])
		if err != nil {
			return nil, err
		}
		accumulators = append(accumulators, accumulator)
	}
	return accumulators, nil
}

// Algorithm returns the identifier of the algorithm being accumulated.
func (a *Accumulator) Algorithm() Algorithm {
	return a.algo
}

// Write feeds a chunk of content to the accumulator. It never fails, as per the
// hash.Hash contract, and is exposed so accumulators can be used as io.Writer.
func (a *Accumulator) Write(p []byte) (n int, err error) {
	return a.h.Write(p)
}

// Size returns the length in bytes of the digest this accumulator will produce.
func (a *Accumulator) Size() int {
	return a.h.Size()
}

// Sum finalises the computation and returns the digest as a lowercase hexadecimal
// string, two characters per digest byte (32 for MD5, 40 for SHA-1).
func (a *Accumulator) Sum() string {
	return hex.EncodeToString(a.h.Sum(nil))
}
