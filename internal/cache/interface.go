package cache

import (
	"context"
	"strings"
	"time"
)

// Cache stores JSON-encoded values. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Key joins a prefix and its parts with ':'.
func Key(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

const (
	ProductKeyPrefix = "product"
	BarcodeKeyPrefix = "barcode"
	CartKeyPrefix    = "cart"
	HeldKeyPrefix    = "held"
)
