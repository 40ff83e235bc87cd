package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []*Product {
	return []*Product{
		{
			ID:       1,
			Name:     "Quantum Neural Headset",
			Price:    decimal.RequireFromString("299.99"),
			Category: "Wearables",
			Colors:   []ColorOption{{ID: "black", Name: "Obsidian", Value: "#000000"}},
			Sizes:    []string{"One Size"},
		},
		{
			ID:       2,
			Name:     "HoloLens Display Glasses",
			Price:    decimal.RequireFromString("459.99"),
			Category: "AR/VR",
			Colors:   []ColorOption{{ID: "blue", Name: "Cobalt", Value: "#0047AB"}},
			Sizes:    []string{"S", "M", "L"},
		},
		{
			ID:       3,
			Name:     "Gravity Wireless Charger",
			Price:    decimal.RequireFromString("49.99"),
			Category: "Accessories",
			Colors:   []ColorOption{{ID: "white", Name: "Pearl", Value: "#FFFFFF"}},
			Sizes:    []string{"One Size"},
		},
	}
}

func TestNewMemoryRepository_RejectsInvalidProducts(t *testing.T) {
	tests := []struct {
		name    string
		product *Product
	}{
		{"zero id", &Product{ID: 0, Name: "X", Price: decimal.NewFromInt(1)}},
		{"empty name", &Product{ID: 1, Name: "", Price: decimal.NewFromInt(1)}},
		{"negative price", &Product{ID: 1, Name: "X", Price: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMemoryRepository([]*Product{tt.product})
			assert.Error(t, err)
		})
	}
}

func TestNewMemoryRepository_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewMemoryRepository([]*Product{
		{ID: 1, Name: "A", Price: decimal.NewFromInt(1)},
		{ID: 1, Name: "B", Price: decimal.NewFromInt(2)},
	})
	assert.Error(t, err)
}

func TestGetProduct(t *testing.T) {
	repo, err := NewMemoryRepository(testProducts())
	require.NoError(t, err)

	p, err := repo.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Quantum Neural Headset", p.Name)

	_, err = repo.GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProducts_NoFilter(t *testing.T) {
	repo, err := NewMemoryRepository(testProducts())
	require.NoError(t, err)

	products, err := repo.ListProducts(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, products, 3)

	// catalog order is preserved
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(2), products[1].ID)
	assert.Equal(t, int64(3), products[2].ID)
}

func TestListProducts_Filters(t *testing.T) {
	repo, err := NewMemoryRepository(testProducts())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int64
	}{
		{"by category", Filter{Categories: []string{"wearables"}}, []int64{1}},
		{"by color", Filter{Colors: []string{"blue"}}, []int64{2}},
		{"by size", Filter{Sizes: []string{"M"}}, []int64{2}},
		{
			"by price range",
			Filter{MinPrice: decimal.NewFromInt(100), MaxPrice: decimal.NewFromInt(300)},
			[]int64{1},
		},
		{
			"price bounds are inclusive",
			Filter{MinPrice: decimal.RequireFromString("49.99"), MaxPrice: decimal.RequireFromString("49.99")},
			[]int64{3},
		},
		{"no match", Filter{Categories: []string{"Drones"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.ListProducts(ctx, tt.filter)
			require.NoError(t, err)

			var ids []int64
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSeedProducts_LoadCleanly(t *testing.T) {
	repo, err := NewMemoryRepository(SeedProducts())
	require.NoError(t, err)

	products, err := repo.ListProducts(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, products, 12)
}
