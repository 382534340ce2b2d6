/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package store

import (
	"context"
	"sync"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/digest"
	"github.com/evidencelab/hashcalc/idgen"
)

type inMemoryStore struct {
	mu      sync.RWMutex
	records map[string]map[digest.Algorithm]Record
}

// NewInMemoryStore returns a store keeping records in memory. It is safe for
// concurrent use and intended for tests and runs without a database.
func NewInMemoryStore() HashStore {
	return &inMemoryStore{
		records: make(map[string]map[digest.Algorithm]Record),
	}
}

func (s *inMemoryStore) SaveHash(ctx context.Context, path string, algo digest.Algorithm, hexDigest string) error {
	err := validateRecordFields(ctx, path, algo, hexDigest)
	if err != nil {
		return err
	}
	id, err := idgen.GenerateUUID4()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	byAlgo, found := s.records[path]
	if !found {
		byAlgo = make(map[digest.Algorithm]Record)
		s.records[path] = byAlgo
	}
	// Replacing a digest keeps the identifier of the record it replaces.
	if previous, found := byAlgo[algo]; found {
		id = previous.ID
	}
	byAlgo[algo] = Record{ID: id, Path: path, Algorithm: algo, HexDigest: hexDigest}
	return nil
}

func (s *inMemoryStore) GetHashes(ctx context.Context, path string) (map[digest.Algorithm]string, error) {
	err := commonerrors.ErrFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing item path")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	hashes := make(map[digest.Algorithm]string, len(s.records[path]))
	for algo, record := range s.records[path] {
		hashes[algo] = record.HexDigest
	}
	return hashes, nil
}

func (s *inMemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]map[digest.Algorithm]Record)
	return nil
}

func validateRecordFields(ctx context.Context, path string, algo digest.Algorithm, hexDigest string) error {
	err := commonerrors.ErrFromContext(ctx)
	if err != nil {
		return err
	}
	if path == "" {
		return commonerrors.New(commonerrors.ErrUndefined, "missing item path")
	}
	if algo == "" {
		return commonerrors.Newf(commonerrors.ErrUndefined, "missing algorithm for [%v]", path)
	}
	if hexDigest == "" {
		return commonerrors.Newf(commonerrors.ErrUndefined, "missing %v digest for [%v]", algo, path)
	}
	return nil
}
