package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rachell444/nova-ecommerce/internal/catalog"
)

type ProductHandler struct {
	catalog catalog.Repository
	timeout time.Duration
}

func NewProductHandler(repo catalog.Repository, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: repo,
		timeout: timeout,
	}
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_filter", err.Error())
		return
	}

	products, err := h.catalog.ListProducts(ctx, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, err := parseProductID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	product, err := h.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// filterFromQuery reads the catalog filter from listing query params:
// categories, colors, sizes (comma-separated) and price (min-max).
func filterFromQuery(r *http.Request) (catalog.Filter, error) {
	q := r.URL.Query()
	filter := catalog.Filter{
		Categories: splitParam(q.Get("categories")),
		Colors:     splitParam(q.Get("colors")),
		Sizes:      splitParam(q.Get("sizes")),
	}

	priceRange := q.Get("price")
	if priceRange == "" {
		return filter, nil
	}

	parts := strings.SplitN(priceRange, "-", 2)
	if len(parts) != 2 {
		return filter, errors.New("price must be min-max")
	}
	min, err := parsePriceBound(parts[0])
	if err != nil {
		return filter, err
	}
	max, err := parsePriceBound(parts[1])
	if err != nil {
		return filter, err
	}
	filter.MinPrice = min
	filter.MaxPrice = max
	return filter, nil
}

func parsePriceBound(s string) (decimal.Decimal, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return decimal.Zero, errors.New("price bounds must be non-negative numbers")
	}
	return decimal.NewFromFloat(v), nil
}

func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
