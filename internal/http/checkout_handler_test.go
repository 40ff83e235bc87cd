package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout_Success(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/v1/cart/items",
		AddItemRequestDTO{ProductID: 1, Quantity: 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/v1/checkout", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order OrderResponseDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	resp.Body.Close()

	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, "COMPLETED", order.Status)
	assert.Contains(t, order.TransactionID, "TXN-")
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// checkout summary must show the same numbers the cart page showed
	assert.Equal(t, "599.98", order.Breakdown.Subtotal)
	assert.Equal(t, "10.00", order.Breakdown.Shipping)
	assert.Equal(t, "60.00", order.Breakdown.Tax)
	assert.Equal(t, "669.98", order.Breakdown.Total)

	// cart is cleared after a successful checkout
	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dto := decodeCart(t, resp)
	assert.Empty(t, dto.Items)
}

func TestCheckout_EmptyCart(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/v1/checkout", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "empty_cart", errResp.Code)
}

func TestBreakdownAgreesAcrossSurfaces(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/v1/cart/items",
		AddItemRequestDTO{ProductID: 3, Quantity: 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cartView := decodeCart(t, resp)

	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	drawerView := decodeCart(t, resp)

	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/v1/checkout", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order OrderResponseDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
	resp.Body.Close()

	assert.Equal(t, cartView.Breakdown, drawerView.Breakdown)
	assert.Equal(t, cartView.Breakdown, order.Breakdown)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t)

	resp := doJSON(t, client, http.MethodGet, srv.URL+"/health", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
