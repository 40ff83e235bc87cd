package http

import (
	"context"
	"net/http"
	"time"

	"github.com/rachell444/nova-ecommerce/internal/catalog"
)

type SearchHandler struct {
	searcher *catalog.Searcher
	timeout  time.Duration
}

func NewSearchHandler(searcher *catalog.Searcher, timeout time.Duration) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
		timeout:  timeout,
	}
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query := r.URL.Query().Get("q")
	products, err := h.searcher.Search(ctx, query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "search failed")
		return
	}
	if products == nil {
		products = []*catalog.Product{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": products,
		"count":   len(products),
	})
}

func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query := r.URL.Query().Get("q")
	suggestions, err := h.searcher.Suggestions(ctx, query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "suggestions failed")
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":       query,
		"suggestions": suggestions,
	})
}
