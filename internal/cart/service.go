package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/singleflight"
)

// Service is the only write path to a session's cart. Reads go through
// the cache when one is configured; cache failures are logged and never
// surfaced to callers.
type Service struct {
	store Store
	cache Cache
	sfg   singleflight.Group // collapses concurrent cache misses for the same session
}

func NewService(store Store, cache Cache) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	return &Service{
		store: store,
		cache: cache,
	}
}

// GetCart returns the session's cart, or a fresh empty cart when the
// session has never added anything.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Cart, error) {
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		c, err := s.cache.Get(ctx, sessionID)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v", err)
		}

		c, errGet := s.store.GetCart(ctx, sessionID)
		if errors.Is(errGet, ErrCartNotFound) {
			return New(sessionID), nil
		}
		if errGet != nil {
			return nil, errGet
		}

		if errSet := s.cache.Set(ctx, sessionID, c); errSet != nil {
			log.Printf("cache set error: %v", errSet)
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Cart), nil
}

func (s *Service) AddItem(ctx context.Context, sessionID string, item LineItem) error {
	if err := s.store.AddItem(ctx, sessionID, item); err != nil {
		log.Printf("store add item error: %v", err)
		return err
	}
	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) error {
	if err := s.store.UpdateQuantity(ctx, sessionID, productID, quantity); err != nil {
		log.Printf("store update quantity error: %v", err)
		return err
	}
	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) error {
	if err := s.store.RemoveItem(ctx, sessionID, productID); err != nil {
		log.Printf("store remove item error: %v", err)
		return err
	}
	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.store.ClearCart(ctx, sessionID); err != nil {
		log.Printf("store clear cart error: %v", err)
		return err
	}
	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) invalidateCache(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, sessionID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
