package grocy

import (
	"context"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// TaskCategory represents a task category.
type TaskCategory struct {
	ID          int
	Name        string
	Description string
}

// Task represents a task with its completion state.
type Task struct {
	ID               int
	Name             string
	Description      string
	DueDate          *time.Time
	Done             bool
	DoneTimestamp    *time.Time
	CategoryID       *int
	Category         *TaskCategory
	AssignedToUserID *int
	AssignedToUser   *User
	Userfields       api.Userfields
}

// NewTaskFromResponse builds a Task from its wire representation. The wire
// carries done as 0/1.
func NewTaskFromResponse(resp *api.TaskResponse) *Task {
	t := &Task{
		ID:               int(resp.ID),
		Name:             resp.Name,
		Description:      resp.Description.String,
		DueDate:          resp.DueDate.Pointer(),
		Done:             resp.Done != 0,
		DoneTimestamp:    resp.DoneTimestamp.Pointer(),
		CategoryID:       resp.CategoryID.Pointer(),
		AssignedToUserID: resp.AssignedToUserID.Pointer(),
		Userfields:       resp.Userfields,
	}
	if resp.Category != nil {
		t.Category = &TaskCategory{
			ID:          int(resp.Category.ID),
			Name:        resp.Category.Name,
			Description: resp.Category.Description.String,
		}
	}
	if resp.AssignedToUser != nil {
		t.AssignedToUser = NewUserFromData(resp.AssignedToUser)
	}
	return t
}

// TaskManager provides task operations.
type TaskManager struct {
	client *api.Client
}

// List returns all tasks.
func (m *TaskManager) List(ctx context.Context, opts ListOptions) ([]*Task, error) {
	data, err := m.client.Tasks(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	tasks := make([]*Task, 0, len(data))
	for i := range data {
		tasks = append(tasks, NewTaskFromResponse(&data[i]))
	}
	return tasks, nil
}

// Get returns one task by ID.
func (m *TaskManager) Get(ctx context.Context, taskID int) (*Task, error) {
	resp, err := m.client.Task(ctx, taskID)
	if err != nil || resp == nil {
		return nil, err
	}
	return NewTaskFromResponse(resp), nil
}

// Complete marks a task as done. A zero doneTime means now.
func (m *TaskManager) Complete(ctx context.Context, taskID int, doneTime time.Time) error {
	return m.client.CompleteTask(ctx, taskID, doneTime)
}

// Undo reverts a task completion server-side.
func (m *TaskManager) Undo(ctx context.Context, taskID int) error {
	return m.client.UndoTask(ctx, taskID)
}
