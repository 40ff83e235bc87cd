package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rachell444/nova-ecommerce/internal/checkout"
)

type CheckoutHandler struct {
	checkout *checkout.Service
	timeout  time.Duration
}

func NewCheckoutHandler(svc *checkout.Service, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: svc,
		timeout:  timeout,
	}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "no session")
		return
	}

	order, err := h.checkout.Checkout(ctx, sessionID)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			respondError(w, http.StatusConflict, "empty_cart", "cart is empty")
			return
		}
		respondError(w, http.StatusInternalServerError, "checkout_failed", "checkout failed")
		return
	}

	respondJSON(w, http.StatusCreated, toOrderResponse(order))
}
