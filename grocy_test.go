package grocy

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocyhq/go-grocy/api"
)

// newTestClient points a facade client at an httptest server.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	client, err := New(u.Scheme+"://"+u.Hostname(), "test-key", api.WithPort(port))
	require.NoError(t, err)
	return client, server
}

func TestNewValidation(t *testing.T) {
	_, err := New("", "test-key")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInvalidConfig)

	_, err = New("https://grocy.example.com", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrInvalidConfig)
}

func TestManagersAreLazySingletons(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	assert.Same(t, client.Stock(), client.Stock())
	assert.Same(t, client.Chores(), client.Chores())
	assert.Same(t, client.ChoresLog(), client.ChoresLog())
	assert.Same(t, client.Tasks(), client.Tasks())
	assert.Same(t, client.Batteries(), client.Batteries())
	assert.Same(t, client.Equipment(), client.Equipment())
	assert.Same(t, client.Recipes(), client.Recipes())
	assert.Same(t, client.MealPlan(), client.MealPlan())
	assert.Same(t, client.ShoppingList(), client.ShoppingList())
	assert.Same(t, client.Users(), client.Users())
	assert.Same(t, client.System(), client.System())
	assert.Same(t, client.Generic(), client.Generic())
	assert.Same(t, client.Calendar(), client.Calendar())
	assert.Same(t, client.Files(), client.Files())
}

func TestAPIAccessor(t *testing.T) {
	apiClient, err := api.NewClient("https://grocy.example.com", "test-key")
	require.NoError(t, err)

	client := NewWithAPI(apiClient)
	assert.Same(t, apiClient, client.API())
}
