// Package store defines the byte store backing a CacheBinding.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no prepended
// metadata, no re-encoding, no mutation). If a store performs internal
// transforms (e.g. compression), they MUST be fully reversed.
package store

import (
	"bytes"
	"context"
	"sync"
)

// Store is a minimal byte store. Must be safe for concurrent use.
type Store interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	// IO/remote failures return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value. Stores may
	// reject writes under pressure; a dropped write only costs a later
	// delegate read.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases resources.
	Close(ctx context.Context) error
}

// Memory is a mutex-guarded in-process Store, the default for CacheBinding.
// The zero value is not ready; construct with NewMemory.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory { return &Memory{m: make(map[string][]byte)} }

func (s *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

func (s *Memory) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.m[key] = bytes.Clone(value)
	s.mu.Unlock()
	return nil
}

func (s *Memory) Close(context.Context) error { return nil }
