package api

import (
	"context"
	"fmt"
)

// ChoreLogResponse represents an immutable chore execution record
type ChoreLogResponse struct {
	ID                     Int        `json:"id"`
	ChoreID                Int        `json:"chore_id"`
	TrackedTime            Time       `json:"tracked_time"`
	DoneByUserID           Int        `json:"done_by_user_id"`
	RowCreatedTimestamp    Time       `json:"row_created_timestamp"`
	Undone                 Bool       `json:"undone"`
	UndoneTimestamp        NullTime   `json:"undone_timestamp"`
	Skipped                Bool       `json:"skipped"`
	ScheduledExecutionTime NullTime   `json:"scheduled_execution_time"`
	Userfields             Userfields `json:"userfields"`
}

func (c *ChoreLogResponse) validate() error {
	if c.ID == 0 {
		return missingField("chore log", "id")
	}
	if c.ChoreID == 0 {
		return missingField("chore log", "chore_id")
	}
	if c.TrackedTime.IsZero() {
		return missingField("chore log", "tracked_time")
	}
	if c.DoneByUserID == 0 {
		return missingField("chore log", "done_by_user_id")
	}
	return nil
}

// ChoresLog returns all chore execution records.
func (c *Client) ChoresLog(ctx context.Context, filters []string) ([]ChoreLogResponse, error) {
	body, err := c.Get(ctx, "objects/chores_log", filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[ChoreLogResponse](body)
}

// ChoreLog returns a single chore execution record by ID.
func (c *Client) ChoreLog(ctx context.Context, choreLogID int) (*ChoreLogResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("objects/chores_log/%d", choreLogID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[ChoreLogResponse](body)
}
