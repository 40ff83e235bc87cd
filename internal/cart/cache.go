package cart

import (
	"context"
	"errors"
)

var ErrCacheMiss = errors.New("cache miss")

// Cache is an optional read-through cache in front of the Store.
type Cache interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Set(ctx context.Context, sessionID string, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// NopCache is used when no cache backend is configured; every read is a
// miss and writes are discarded.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*Cart, error) { return nil, ErrCacheMiss }
func (NopCache) Set(context.Context, string, *Cart) error   { return nil }
func (NopCache) Delete(context.Context, string) error       { return nil }
