package api

import (
	"context"
	"fmt"
	"time"
)

// ChoreData represents a chore entity with its scheduling and assignment
// configuration
type ChoreData struct {
	ID                            Int            `json:"id"`
	Name                          string         `json:"name"`
	Description                   NullString     `json:"description"`
	PeriodType                    PeriodType     `json:"period_type"`
	PeriodConfig                  NullString     `json:"period_config"`
	PeriodDays                    NullInt        `json:"period_days"`
	TrackDateOnly                 Bool           `json:"track_date_only"`
	Rollover                      Bool           `json:"rollover"`
	AssignmentType                AssignmentType `json:"assignment_type"`
	AssignmentConfig              NullString     `json:"assignment_config"`
	NextExecutionAssignedToUserID NullInt        `json:"next_execution_assigned_to_user_id"`
	Userfields                    Userfields     `json:"userfields"`
}

func (c *ChoreData) validate() error {
	if c.ID == 0 {
		return missingField("chore", "id")
	}
	if c.Name == "" {
		return missingField("chore", "name")
	}
	if c.PeriodType == "" {
		return missingField("chore", "period_type")
	}
	return nil
}

// CurrentChoreResponse represents the lightweight chore summary returned by
// the chores list endpoint
type CurrentChoreResponse struct {
	ChoreID                    Int      `json:"chore_id"`
	LastTrackedTime            NullTime `json:"last_tracked_time"`
	NextEstimatedExecutionTime NullTime `json:"next_estimated_execution_time"`
}

func (c *CurrentChoreResponse) validate() error {
	if c.ChoreID == 0 {
		return missingField("current chore", "chore_id")
	}
	return nil
}

// ChoreDetailsResponse represents full chore details, including the resolved
// last executor and next assignee
type ChoreDetailsResponse struct {
	Chore                      ChoreData `json:"chore"`
	LastTracked                NullTime  `json:"last_tracked"`
	NextEstimatedExecutionTime NullTime  `json:"next_estimated_execution_time"`
	TrackCount                 Int       `json:"track_count"`
	NextExecutionAssignedUser  *UserData `json:"next_execution_assigned_user"`
	LastDoneBy                 *UserData `json:"last_done_by"`
}

func (c *ChoreDetailsResponse) validate() error {
	if err := c.Chore.validate(); err != nil {
		return err
	}
	if c.NextExecutionAssignedUser != nil {
		if err := c.NextExecutionAssignedUser.validate(); err != nil {
			return err
		}
	}
	if c.LastDoneBy != nil {
		return c.LastDoneBy.validate()
	}
	return nil
}

// Chores returns all chores as lightweight summaries.
func (c *Client) Chores(ctx context.Context, filters []string) ([]CurrentChoreResponse, error) {
	body, err := c.Get(ctx, "chores", filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[CurrentChoreResponse](body)
}

// Chore returns full details for a single chore.
func (c *Client) Chore(ctx context.Context, choreID int) (*ChoreDetailsResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("chores/%d", choreID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[ChoreDetailsResponse](body)
}

// ExecuteChore marks a chore as executed. A zero doneBy leaves the executing
// user to the server; a zero trackedTime means now.
func (c *Client) ExecuteChore(ctx context.Context, choreID, doneBy int, trackedTime time.Time, skipped bool) error {
	if trackedTime.IsZero() {
		trackedTime = time.Now()
	}
	data := map[string]any{
		"tracked_time": FormatTime(trackedTime),
		"skipped":      skipped,
	}
	if doneBy != 0 {
		data["done_by"] = doneBy
	}
	_, err := c.Post(ctx, fmt.Sprintf("chores/%d/execute", choreID), data)
	return err
}

// UndoChoreExecution reverts a chore execution server-side.
func (c *Client) UndoChoreExecution(ctx context.Context, executionID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("chores/executions/%d/undo", executionID), map[string]any{})
	return err
}

// CalculateChoreAssignments recalculates next assignments for all chores.
func (c *Client) CalculateChoreAssignments(ctx context.Context) error {
	_, err := c.Post(ctx, "chores/executions/calculate-next-assignments", map[string]any{})
	return err
}

// MergeChores merges two chores into one.
func (c *Client) MergeChores(ctx context.Context, keepID, removeID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("chores/%d/merge/%d", keepID, removeID), map[string]any{})
	return err
}
