/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package postgres persists digests in a PostgreSQL database, one row per
// (item, algorithm) pair.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/digest"
	"github.com/evidencelab/hashcalc/idgen"
	"github.com/evidencelab/hashcalc/store"
)

const (
	schemaDDL = `CREATE TABLE IF NOT EXISTS content_hashes (
	id UUID PRIMARY KEY,
	item_path TEXT NOT NULL,
	algorithm TEXT NOT NULL,
	hash_value TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (item_path, algorithm)
)`
	upsertQuery = `INSERT INTO content_hashes (id, item_path, algorithm, hash_value)
VALUES ($1, $2, $3, $4)
ON CONFLICT (item_path, algorithm) DO UPDATE SET hash_value = EXCLUDED.hash_value`
	selectQuery = `SELECT algorithm, hash_value FROM content_hashes WHERE item_path = $1`
)

// Store is a HashStore backed by a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

var _ store.HashStore = (*Store)(nil)

// NewStore wraps an existing connection pool. The pool remains owned by the caller
// unless the store's Close is used to release it.
func NewStore(pool *pgxpool.Pool) (*Store, error) {
	if pool == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing connection pool")
	}
	return &Store{pool: pool}, nil
}

// Connect creates a store from a database URL and verifies the database responds.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing database URL")
	}
	err := commonerrors.ErrFromContext(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid database URL")
	}
	cfg.MaxConns = 10
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create the connection pool")
	}
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not reach the database")
	}
	return NewStore(pool)
}

// EnsureSchema creates the hash table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	err := commonerrors.ErrFromContext(ctx)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, schemaDDL)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create the hash table")
	}
	return nil
}

func (s *Store) SaveHash(ctx context.Context, path string, algo digest.Algorithm, hexDigest string) error {
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
	id, err := idgen.GenerateUUID4()
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, upsertQuery, id, path, string(algo), hexDigest)
	if err != nil {
		return commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not save the %v digest of [%v]", algo, path)
	}
	return nil
}

func (s *Store) GetHashes(ctx context.Context, path string) (map[digest.Algorithm]string, error) {
	err := commonerrors.ErrFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing item path")
	}
	rows, err := s.pool.Query(ctx, selectQuery, path)
	if err != nil {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not fetch the digests of [%v]", path)
	}
	defer rows.Close()

	hashes := make(map[digest.Algorithm]string)
	for rows.Next() {
		var algo, hexDigest string
		err = rows.Scan(&algo, &hexDigest)
		if err != nil {
			return nil, commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not read a digest row of [%v]", path)
		}
		hashes[digest.Algorithm(algo)] = hexDigest
	}
	err = rows.Err()
	if err != nil {
		return nil, commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not fetch the digests of [%v]", path)
	}
	return hashes, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
