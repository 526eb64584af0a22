package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/stretchr/testify/require"
)

// memCache is an in-memory cache.Cache that round-trips values through JSON
// like the Redis implementation does.
type memCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	ttls    map[string]time.Duration
	deleted []string
	getErr  error
	setErr  error
	// failSet, when set, is consulted per key before writing.
	failSet func(key string) error
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Get(_ context.Context, key string, value any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.getErr != nil {
		return false, c.getErr
	}
	data, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, value)
}

func (c *memCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.setErr != nil {
		return c.setErr
	}
	if c.failSet != nil {
		if err := c.failSet(key); err != nil {
			return err
		}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = data
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, k := range keys {
		delete(c.items, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (c *memCache) Close() error { return nil }

// failSetsWithPrefix makes every Set on a key starting with prefix fail.
func (c *memCache) failSetsWithPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failSet = func(key string) error {
		if strings.HasPrefix(key, prefix) {
			return errors.New("cache unavailable")
		}
		return nil
	}
}

func (c *memCache) restoreSets() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failSet = nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

// requireAppError asserts err is an AppError with the given code.
func requireAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}
