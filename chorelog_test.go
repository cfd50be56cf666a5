package grocy

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoreLogList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/objects/chores_log", r.URL.Path)
		fmt.Fprint(w, `[{
			"id": "42", "chore_id": "3",
			"tracked_time": "2024-02-26 18:00:00",
			"done_by_user_id": "2",
			"row_created_timestamp": "2024-02-26 18:00:05",
			"undone": "0", "undone_timestamp": "", "skipped": "1"
		}]`)
	}))

	logs, err := client.ChoresLog().List(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, logs, 1)

	record := logs[0]
	assert.Equal(t, 42, record.ID)
	assert.Equal(t, 3, record.ChoreID)
	assert.Equal(t, 2, record.DoneByUserID)
	assert.False(t, record.Undone)
	assert.Nil(t, record.UndoneTimestamp)
	assert.True(t, record.Skipped)
}

func TestChoreLogFetchDetails(t *testing.T) {
	// Hydration resolves custom fields, the owning chore, and the executing
	// user with three requests in that order.
	var paths []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/api/objects/chores_log/42":
			fmt.Fprint(w, `{
				"id": "42", "chore_id": "3",
				"tracked_time": "2024-02-26 18:00:00",
				"done_by_user_id": "2",
				"undone": "0", "undone_timestamp": ""
			}`)
		case "/api/userfields/chores_log/42":
			fmt.Fprint(w, `{"note": "done late"}`)
		case "/api/chores/3":
			fmt.Fprint(w, choreDetails(3, "Trash"))
		case "/api/users":
			fmt.Fprint(w, `[
				{"id": "1", "username": "demo"},
				{"id": "2", "username": "jane", "first_name": "Jane"}
			]`)
		default:
			t.Errorf("unexpected request %s", r.URL.Path)
		}
	}))

	record, err := client.ChoresLog().Get(context.Background(), 42)
	require.NoError(t, err)
	require.NoError(t, record.FetchDetails(context.Background(), client.API()))

	assert.Equal(t, []string{
		"/api/objects/chores_log/42",
		"/api/userfields/chores_log/42",
		"/api/chores/3",
		"/api/users",
	}, paths)

	require.NotNil(t, record.Chore)
	assert.Equal(t, 3, record.Chore.ID)
	assert.Equal(t, "Trash", record.Chore.Name)

	require.NotNil(t, record.DoneByUser)
	assert.Equal(t, record.DoneByUserID, record.DoneByUser.ID)
	assert.Equal(t, "jane", record.DoneByUser.Username)

	assert.False(t, record.Undone)
	assert.Nil(t, record.UndoneTimestamp)
	assert.Equal(t, "done late", record.Userfields["note"])
}
