// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package scorecache provides an embedded BadgerDB cache of computed
// Bacon scores.
//
// A BFS over a large dataset is cheap but not free; long-lived serve
// deployments answer the same names repeatedly, so scores are cached
// keyed by dataset checksum and actor name:
//
//	score/<dataset-sha256>/<actor-name> -> varint distance
//
// The checksum in the key makes invalidation implicit: after the
// dataset is reloaded, old entries are simply never looked up again.
//
// License: BadgerDB is Apache 2.0 licensed (github.com/dgraph-io/badger).
// This package follows Apache 2.0 guidelines for attribution and usage.
package scorecache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces score entries within the database.
const keyPrefix = "score/"

// Config holds configuration for the score cache database.
type Config struct {
	// Path is the directory for BadgerDB files.
	// Required for persistent caches. Ignored when InMemory is true.
	Path string

	// InMemory enables in-memory mode (no disk persistence).
	// Useful for testing.
	InMemory bool

	// SyncWrites enables synchronous writes for durability. A lost
	// cache entry only costs one BFS, so the default is false.
	SyncWrites bool

	// Logger receives BadgerDB's internal logging.
	// If nil, BadgerDB's internal logging is disabled.
	Logger *slog.Logger
}

// DefaultConfig returns the production configuration: persistent,
// async writes, single version per key.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		SyncWrites: false,
	}
}

// InMemoryConfig returns a configuration for testing: no disk I/O.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Cache is a persistent map from (dataset checksum, actor name) to a
// computed distance.
//
// # Thread Safety
//
// Safe for concurrent use; BadgerDB transactions provide isolation.
type Cache struct {
	db *badger.DB
}

// Open creates a Cache with the given configuration.
//
// # Outputs
//
//   - *Cache: The opened cache. Caller must call Close() when done.
//   - error: Non-nil if the path is invalid or the database cannot
//     be opened.
func Open(cfg Config) (*Cache, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for a persistent cache")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create cache directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open score cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get looks up a cached distance.
//
// # Outputs
//
//   - int: The cached distance (may be the unreachable sentinel -1;
//     unreachable results are cached too).
//   - bool: True on a cache hit.
//   - error: Non-nil on a database failure, never on a plain miss.
func (c *Cache) Get(checksum, actor string) (int, bool, error) {
	var distance int
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(checksum, actor))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			d, n := binary.Varint(val)
			if n <= 0 {
				return fmt.Errorf("corrupt cache entry for %q", actor)
			}
			distance = int(d)
			found = true
			return nil
		})
	})
	if err != nil {
		return 0, false, fmt.Errorf("score cache get: %w", err)
	}
	return distance, found, nil
}

// Put stores a computed distance.
func (c *Cache) Put(checksum, actor string, distance int) error {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutVarint(buf, int64(distance))

	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(checksum, actor), buf[:n])
	})
	if err != nil {
		return fmt.Errorf("score cache put: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func key(checksum, actor string) []byte {
	return []byte(keyPrefix + checksum + "/" + actor)
}
