package api

import (
	"context"
	"fmt"
	"time"
)

// TaskCategoryData represents a task category entity
type TaskCategoryData struct {
	ID                  Int        `json:"id"`
	Name                string     `json:"name"`
	Description         NullString `json:"description"`
	RowCreatedTimestamp Time       `json:"row_created_timestamp"`
}

func (t *TaskCategoryData) validate() error {
	if t.ID == 0 {
		return missingField("task category", "id")
	}
	if t.Name == "" {
		return missingField("task category", "name")
	}
	return nil
}

// TaskResponse represents a task
type TaskResponse struct {
	ID               Int               `json:"id"`
	Name             string            `json:"name"`
	Description      NullString        `json:"description"`
	DueDate          NullTime          `json:"due_date"`
	Done             Int               `json:"done"`
	DoneTimestamp    NullTime          `json:"done_timestamp"`
	CategoryID       NullInt           `json:"category_id"`
	Category         *TaskCategoryData `json:"category"`
	AssignedToUserID NullInt           `json:"assigned_to_user_id"`
	AssignedToUser   *UserData         `json:"assigned_to_user"`
	Userfields       Userfields        `json:"userfields"`
}

func (t *TaskResponse) validate() error {
	if t.ID == 0 {
		return missingField("task", "id")
	}
	if t.Name == "" {
		return missingField("task", "name")
	}
	if t.Category != nil {
		if err := t.Category.validate(); err != nil {
			return err
		}
	}
	if t.AssignedToUser != nil {
		return t.AssignedToUser.validate()
	}
	return nil
}

// Tasks returns all tasks.
func (c *Client) Tasks(ctx context.Context, filters []string) ([]TaskResponse, error) {
	body, err := c.Get(ctx, "tasks", filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[TaskResponse](body)
}

// Task returns a single task by ID.
func (c *Client) Task(ctx context.Context, taskID int) (*TaskResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("objects/tasks/%d", taskID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[TaskResponse](body)
}

// CompleteTask marks a task as completed. A zero doneTime means now.
func (c *Client) CompleteTask(ctx context.Context, taskID int, doneTime time.Time) error {
	if doneTime.IsZero() {
		doneTime = time.Now()
	}
	data := map[string]any{"done_time": FormatTime(doneTime)}
	_, err := c.Post(ctx, fmt.Sprintf("tasks/%d/complete", taskID), data)
	return err
}

// UndoTask reverts a task completion server-side.
func (c *Client) UndoTask(ctx context.Context, taskID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("tasks/%d/undo", taskID), map[string]any{})
	return err
}
