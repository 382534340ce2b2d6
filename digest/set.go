/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package digest

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/evidencelab/hashcalc/commonerrors"
)

// DefaultAlgorithms returns the algorithms enabled when no selection is supplied.
func DefaultAlgorithms() []Algorithm {
	return []Algorithm{MD5, SHA1}
}

// Set is an immutable collection of enabled algorithms. The zero value is the empty
// set and is safe to query.
type Set struct {
	algos mapset.Set[Algorithm]
}

// NewSet builds a set from the given algorithms, which must all be registered.
// An empty set cannot be built: enabling nothing is a configuration error.
func NewSet(algos ...Algorithm) (Set, error) {
	if len(algos) == 0 {
		return Set{}, commonerrors.New(commonerrors.ErrInvalid, "at least one algorithm must be enabled")
	}
	set := mapset.NewSet[Algorithm]()
	for i := range algos {
		if !Supported(algos[i]) {
			return Set{}, commonerrors.Newf(commonerrors.ErrInvalid, "algorithm [%v] is not registered", algos[i])
		}
		set.Add(algos[i])
	}
	return Set{algos: set}, nil
}

// Contains states whether the algorithm is enabled.
func (s Set) Contains(algo Algorithm) bool {
	if s.algos == nil {
		return false
	}
	return s.algos.Contains(algo)
}

// Len returns the number of enabled algorithms.
func (s Set) Len() int {
	if s.algos == nil {
		return 0
	}
	return s.algos.Cardinality()
}

// List returns the enabled algorithms sorted by identifier, so that any iteration
// over the set is deterministic from one run to the next.
func (s Set) List() []Algorithm {
	if s.algos == nil {
		return nil
	}
	algos := s.algos.ToSlice()
	sort.Slice(algos, func(i, j int) bool { return algos[i] < algos[j] })
	return algos
}

func (s Set) String() string {
	list := s.List()
	names := make([]string, 0, len(list))
	for i := range list {
		names = append(names, string(list[i]))
	}
	return fmt.Sprintf("[%v]", strings.Join(names, ", "))
}

// ParseSet determines which algorithms a selection string enables:
//   - the empty selection enables the defaults (MD5 and SHA-1)
//   - otherwise every registered algorithm whose identifier occurs in the selection
//     is enabled; the match is a raw case-sensitive substring search, so "MD5,SHA1",
//     "MD5 SHA1" and "please enable MD5" all enable MD5, whereas "md5" does not
//   - a non-empty selection which enables nothing is invalid
//
// ParseSet has no side effects and returns the same set for the same selection and
// registry contents.
func ParseSet(selection string) (Set, error) {
	if selection == "" {
		return NewSet(DefaultAlgorithms()...)
	}
	enabled := make([]Algorithm, 0, 2)
	for _, algo := range Registered() {
		if strings.Contains(selection, string(algo)) {
			enabled = append(enabled, algo)
		}
	}
	if len(enabled) == 0 {
		return Set{}, commonerrors.Newf(commonerrors.ErrInvalid, "selection [%v] does not enable any known algorithm", selection)
	}
	return NewSet(enabled...)
}
