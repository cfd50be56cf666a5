package grocy

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersJSON = `[
	{"id": "1", "username": "demo", "display_name": "Demo User"},
	{"id": "2", "username": "jane", "first_name": "Jane", "last_name": "Doe"},
	{"id": "3", "username": "ops"}
]`

func TestUsersGetFiltersList(t *testing.T) {
	var requests int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/api/users", r.URL.Path)
		fmt.Fprint(w, usersJSON)
	}))

	user, err := client.Users().Get(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 2, user.ID)
	assert.Equal(t, "jane", user.Username)
	assert.Equal(t, 1, requests)
}

func TestUsersGetUnknownID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, usersJSON)
	}))

	user, err := client.Users().Get(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUsersGetEmptyList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))

	user, err := client.Users().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserDisplayNameFallback(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, usersJSON)
	}))

	users, err := client.Users().List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, "Demo User", users[0].DisplayName)
	assert.Equal(t, "Jane Doe", users[1].DisplayName)
	assert.Equal(t, "ops", users[2].DisplayName)
}

func TestCurrentUser(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		fmt.Fprint(w, `[{"id": "1", "username": "demo"}]`)
	}))

	user, err := client.Users().Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "demo", user.Username)
}
