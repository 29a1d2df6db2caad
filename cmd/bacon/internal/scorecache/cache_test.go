// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package scorecache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// TestCache_PutGet verifies the round trip.
func TestCache_PutGet(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("sum1", "John Lithgow", 1))

	d, ok, err := c.Get("sum1", "John Lithgow")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, d)
}

// TestCache_Miss verifies a plain miss is not an error.
func TestCache_Miss(t *testing.T) {
	c := openTestCache(t)

	_, ok, err := c.Get("sum1", "Nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestCache_ChecksumIsolation verifies that entries from an old
// dataset snapshot are invisible under a new checksum.
func TestCache_ChecksumIsolation(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("old-sum", "John Lithgow", 1))

	_, ok, err := c.Get("new-sum", "John Lithgow")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestCache_UnreachableSentinel verifies the -1 sentinel survives the
// varint round trip and is distinguishable from a miss.
func TestCache_UnreachableSentinel(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("sum1", "Isolated Actor", -1))

	d, ok, err := c.Get("sum1", "Isolated Actor")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -1, d)
}

// TestCache_PersistentPath verifies the on-disk mode round trip.
func TestCache_PersistentPath(t *testing.T) {
	dir := t.TempDir()

	c, err := Open(DefaultConfig(dir))
	require.NoError(t, err)
	require.NoError(t, c.Put("sum1", "Kevin Bacon", 0))
	require.NoError(t, c.Close())

	c, err = Open(DefaultConfig(dir))
	require.NoError(t, err)
	defer c.Close()

	d, ok, err := c.Get("sum1", "Kevin Bacon")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, d)
}

// TestOpen_RequiresPath verifies the persistent mode validates config.
func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(Config{})
	assert.Error(t, err)
}
