package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stockItemJSON = `{
	"product_id": "5",
	"amount": "2",
	"best_before_date": "2024-06-01",
	"amount_opened": "1",
	"amount_aggregated": "2",
	"amount_opened_aggregated": "1",
	"is_aggregated_amount": "0",
	"product": {
		"id": "5",
		"name": "Milk",
		"description": "",
		"location_id": "2",
		"qu_id_stock": "1",
		"qu_id_purchase": "1",
		"allow_partial_units_in_stock": "0",
		"row_created_timestamp": "2024-01-01 10:00:00",
		"min_stock_amount": "1",
		"default_best_before_days": "7"
	}
}`

func TestStockDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock", r.URL.Path)
		w.Write([]byte(`[` + stockItemJSON + `]`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	stock, err := client.Stock(context.Background())
	require.NoError(t, err)
	require.Len(t, stock, 1)

	item := stock[0]
	assert.Equal(t, 5, int(item.ProductID))
	assert.Equal(t, 2.0, float64(item.Amount))
	assert.Equal(t, 1.0, float64(item.AmountOpened))
	assert.Equal(t, "Milk", item.Product.Name)
	require.True(t, item.Product.MinStockAmount.Valid)
	assert.Equal(t, 1.0, item.Product.MinStockAmount.Float64)
}

func TestStockMissingRequiredField(t *testing.T) {
	var broken map[string]any
	require.NoError(t, json.Unmarshal([]byte(stockItemJSON), &broken))
	broken["best_before_date"] = ""
	body, err := json.Marshal([]any{broken})
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	_, err = client.Stock(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "best_before_date")
}

func TestStockOpenedExceedsAggregated(t *testing.T) {
	var broken map[string]any
	require.NoError(t, json.Unmarshal([]byte(stockItemJSON), &broken))
	broken["amount_opened_aggregated"] = "3"
	body, err := json.Marshal([]any{broken})
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	_, err = client.Stock(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "exceeds aggregated amount")
}

func TestProductDetailsDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/products/5", r.URL.Path)
		w.Write([]byte(`{
			"product": {"id": "5", "name": "Milk", "qu_id_stock": "1", "qu_id_purchase": "1", "row_created_timestamp": "2024-01-01 10:00:00"},
			"quantity_unit_stock": {"id": "1", "name": "Liter"},
			"default_quantity_unit_purchase": {"id": "1", "name": "Liter"},
			"product_barcodes": [{"barcode": "4000417025005", "amount": "1"}],
			"location": {"id": "2", "name": "Fridge"},
			"stock_amount": "2",
			"stock_amount_opened": "1",
			"last_purchased": "2024-02-20",
			"last_price": "1.19",
			"next_best_before_date": "2024-06-01 23:59:59"
		}`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	details, err := client.Product(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Milk", details.Product.Name)
	assert.Equal(t, "Liter", details.QuantityUnitStock.Name)
	require.Len(t, details.Barcodes, 1)
	assert.Equal(t, "4000417025005", details.Barcodes[0].Barcode)
	require.NotNil(t, details.Location)
	assert.Equal(t, "Fridge", details.Location.Name)
	require.True(t, details.LastPrice.Valid)
	assert.Equal(t, 1.19, details.LastPrice.Float64)
}

func TestInventoryProductBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/products/5/inventory", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(10), body["new_amount"])
		assert.NotContains(t, body, "best_before_date")
		assert.NotContains(t, body, "location_id")
		assert.NotContains(t, body, "price")

		w.Write([]byte(`[{
			"id": "77", "product_id": "5", "amount": "8",
			"best_before_date": "2024-06-01", "purchased_date": "2024-03-01",
			"stock_id": "abc123", "transaction_id": "t-1",
			"transaction_type": "inventory-correction"
		}]`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	booking, err := client.InventoryProduct(context.Background(), 5, 10, InventoryRequest{})
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, 5, int(booking.ProductID))
	assert.Equal(t, TransactionInventoryCorrection, booking.TransactionType)
}

func TestInventoryRequestOptionalFields(t *testing.T) {
	price := 2.49
	req := InventoryRequest{
		BestBeforeDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		LocationID:     2,
		Price:          &price,
	}
	body := req.body(10)

	assert.Equal(t, float64(10), body["new_amount"])
	assert.Equal(t, "2024-06-01", body["best_before_date"])
	assert.Equal(t, 2, body["location_id"])
	assert.Equal(t, 2.49, body["price"])
	assert.NotContains(t, body, "shopping_location_id")
}

func TestAddProductBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "purchase", body["transaction_type"])
		assert.Equal(t, float64(3), body["amount"])
		assert.Equal(t, "2024-06-01", body["best_before_date"])
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	_, err := client.AddProduct(context.Background(), 5, 3, 1.19,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), TransactionPurchase)
	require.NoError(t, err)
}

func TestVolatileStockDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/volatile", r.URL.Path)
		w.Write([]byte(`{
			"due_products": [` + stockItemJSON + `],
			"overdue_products": [],
			"expired_products": [],
			"missing_products": [{"id": "9", "name": "Eggs", "amount_missing": "6", "is_partly_in_stock": "0"}]
		}`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	volatile, err := client.VolatileStock(context.Background())
	require.NoError(t, err)

	require.Len(t, volatile.DueProducts, 1)
	assert.Empty(t, volatile.OverdueProducts)
	require.Len(t, volatile.MissingProducts, 1)
	assert.Equal(t, "Eggs", volatile.MissingProducts[0].Name)
	assert.Equal(t, 6.0, float64(volatile.MissingProducts[0].AmountMissing))
}
