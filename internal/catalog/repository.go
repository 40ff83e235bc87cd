package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrProductNotFound = errors.New("product not found")

// Repository defines read access to the product catalog.
// Consumers define this interface, not the storage implementation.
type Repository interface {
	ListProducts(ctx context.Context, filter Filter) ([]*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
}

// MemoryRepository serves the static catalog from memory.
// Products are immutable for the lifetime of the process.
type MemoryRepository struct {
	mu       sync.RWMutex
	products []*Product
	byID     map[int64]*Product
}

// NewMemoryRepository validates and indexes the given products.
// Catalog data enters the system here, so invalid records are rejected
// rather than carried into carts later.
func NewMemoryRepository(products []*Product) (*MemoryRepository, error) {
	r := &MemoryRepository{
		byID: make(map[int64]*Product, len(products)),
	}
	for _, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("invalid product %d: %w", p.ID, err)
		}
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		r.products = append(r.products, p)
		r.byID[p.ID] = p
	}
	return r, nil
}

func validateProduct(p *Product) error {
	if p.ID <= 0 {
		return errors.New("id must be positive")
	}
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Price.IsNegative() {
		return errors.New("price must be non-negative")
	}
	return nil
}

// ListProducts returns products matching the filter, in catalog order.
func (r *MemoryRepository) ListProducts(_ context.Context, filter Filter) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *MemoryRepository) GetProduct(_ context.Context, id int64) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return p, nil
}
