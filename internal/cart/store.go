package cart

import (
	"context"
	"errors"
	"sync"
)

var ErrCartNotFound = errors.New("cart not found")

// Store defines the interface for cart state operations.
// Consumers define this interface, not the storage implementation.
type Store interface {
	GetCart(ctx context.Context, sessionID string) (*Cart, error)
	AddItem(ctx context.Context, sessionID string, item LineItem) error
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) error
	RemoveItem(ctx context.Context, sessionID string, productID int64) error
	ClearCart(ctx context.Context, sessionID string) error
}

// MemoryStore holds session carts in memory. Carts live for the process
// lifetime only; there is no persistence across restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]*Cart),
	}
}

// GetCart returns a copy of the session's cart, or ErrCartNotFound when
// the session has never added anything.
func (s *MemoryStore) GetCart(_ context.Context, sessionID string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.carts[sessionID]
	if !exists {
		return nil, ErrCartNotFound
	}
	return c.Copy(), nil
}

func (s *MemoryStore) AddItem(_ context.Context, sessionID string, item LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.carts[sessionID]
	if !exists {
		c = New(sessionID)
		s.carts[sessionID] = c
	}
	c.AddItem(item)
	return nil
}

func (s *MemoryStore) UpdateQuantity(_ context.Context, sessionID string, productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, exists := s.carts[sessionID]; exists {
		c.UpdateQuantity(productID, quantity)
	}
	return nil
}

func (s *MemoryStore) RemoveItem(_ context.Context, sessionID string, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, exists := s.carts[sessionID]; exists {
		c.RemoveItem(productID)
	}
	return nil
}

func (s *MemoryStore) ClearCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
