package grocy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasksList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks", r.URL.Path)
		fmt.Fprint(w, `[
			{"id": "1", "name": "Water plants", "done": "0", "due_date": "2024-03-10"},
			{"id": "2", "name": "File taxes", "done": "1", "done_timestamp": "2024-03-01 09:00:00",
			 "category_id": "4", "category": {"id": "4", "name": "Paperwork"},
			 "assigned_to_user_id": "2", "assigned_to_user": {"id": "2", "username": "jane"}}
		]`)
	}))

	tasks, err := client.Tasks().List(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.False(t, tasks[0].Done)
	require.NotNil(t, tasks[0].DueDate)
	assert.Nil(t, tasks[0].Category)

	assert.True(t, tasks[1].Done)
	require.NotNil(t, tasks[1].DoneTimestamp)
	require.NotNil(t, tasks[1].Category)
	assert.Equal(t, "Paperwork", tasks[1].Category.Name)
	require.NotNil(t, tasks[1].AssignedToUser)
	assert.Equal(t, "jane", tasks[1].AssignedToUser.Username)
}

func TestTaskComplete(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks/1/complete", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "done_time")
	}))

	require.NoError(t, client.Tasks().Complete(context.Background(), 1, time.Time{}))
}
