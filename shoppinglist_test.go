package grocy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListItems(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/objects/shopping_list", r.URL.Path)
		fmt.Fprint(w, `[
			{"id": "1", "shopping_list_id": "1", "product_id": "5", "amount": "2", "done": "0"},
			{"id": "2", "shopping_list_id": "1", "product_id": "", "note": "batteries", "amount": "", "done": "1"}
		]`)
	}))

	items, err := client.ShoppingList().Items(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].ProductID)
	assert.Equal(t, 5, *items[0].ProductID)
	assert.Equal(t, 2.0, items[0].Amount)
	assert.False(t, items[0].Done)

	assert.Nil(t, items[1].ProductID, "free-text item has no product")
	assert.Equal(t, "batteries", items[1].Note)
	assert.True(t, items[1].Done)
}

func TestShoppingListAddProduct(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/shoppinglist/add-product", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(5), body["product_id"])
		assert.Equal(t, float64(1), body["list_id"])
		assert.Equal(t, float64(2), body["product_amount"])
		assert.NotContains(t, body, "qu_id")
	}))

	require.NoError(t, client.ShoppingList().AddProduct(context.Background(), 5, 1, 2, 0))
}

func TestShoppingListMarkItem(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/objects/shopping_list/7", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1), body["done"])
	}))

	require.NoError(t, client.ShoppingList().MarkItem(context.Background(), 7, true))
}
