package grocy

import (
	"context"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// Chore represents a chore together with its schedule and tracking state.
// Constructors built from the list surface only fill the summary fields;
// FetchDetails completes the rest.
type Chore struct {
	ID   int
	Name string

	Description      string
	PeriodType       api.PeriodType
	PeriodConfig     string
	PeriodDays       *int
	TrackDateOnly    bool
	Rollover         bool
	AssignmentType   api.AssignmentType
	AssignmentConfig string
	Userfields       api.Userfields

	LastTrackedTime            *time.Time
	NextEstimatedExecutionTime *time.Time
	TrackCount                 int

	NextExecutionAssignedToUserID *int
	NextExecutionAssignedUser     *User
	LastDoneBy                    *User
}

// NewChoreFromCurrent builds a Chore from its list summary.
func NewChoreFromCurrent(resp *api.CurrentChoreResponse) *Chore {
	return &Chore{
		ID:                         int(resp.ChoreID),
		LastTrackedTime:            resp.LastTrackedTime.Pointer(),
		NextEstimatedExecutionTime: resp.NextEstimatedExecutionTime.Pointer(),
	}
}

// NewChoreFromDetails builds a fully populated Chore.
func NewChoreFromDetails(resp *api.ChoreDetailsResponse) *Chore {
	c := &Chore{}
	c.applyDetails(resp)
	return c
}

func (c *Chore) applyDetails(resp *api.ChoreDetailsResponse) {
	c.ID = int(resp.Chore.ID)
	c.Name = resp.Chore.Name
	c.Description = resp.Chore.Description.String
	c.PeriodType = resp.Chore.PeriodType
	c.PeriodConfig = resp.Chore.PeriodConfig.String
	c.PeriodDays = resp.Chore.PeriodDays.Pointer()
	c.TrackDateOnly = bool(resp.Chore.TrackDateOnly)
	c.Rollover = bool(resp.Chore.Rollover)
	c.AssignmentType = resp.Chore.AssignmentType
	c.AssignmentConfig = resp.Chore.AssignmentConfig.String
	c.NextExecutionAssignedToUserID = resp.Chore.NextExecutionAssignedToUserID.Pointer()
	c.Userfields = resp.Chore.Userfields
	c.LastTrackedTime = resp.LastTracked.Pointer()
	c.NextEstimatedExecutionTime = resp.NextEstimatedExecutionTime.Pointer()
	c.TrackCount = int(resp.TrackCount)
	if resp.NextExecutionAssignedUser != nil {
		c.NextExecutionAssignedUser = NewUserFromData(resp.NextExecutionAssignedUser)
	}
	if resp.LastDoneBy != nil {
		c.LastDoneBy = NewUserFromData(resp.LastDoneBy)
	}
}

// FetchDetails loads the full chore details and merges them into the
// receiver. Safe to call more than once; every call refetches.
func (c *Chore) FetchDetails(ctx context.Context, client *api.Client) error {
	details, err := client.Chore(ctx, c.ID)
	if err != nil {
		return err
	}
	if details == nil {
		return nil
	}
	c.applyDetails(details)
	return nil
}

// ChoreManager provides chore operations.
type ChoreManager struct {
	client *api.Client
}

// List returns all chores. With opts.Details each chore is hydrated with one
// extra request, sequentially in list order.
func (m *ChoreManager) List(ctx context.Context, opts ListOptions) ([]*Chore, error) {
	data, err := m.client.Chores(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	chores := make([]*Chore, 0, len(data))
	for i := range data {
		chores = append(chores, NewChoreFromCurrent(&data[i]))
	}
	if opts.Details {
		for _, c := range chores {
			if err := c.FetchDetails(ctx, m.client); err != nil {
				return nil, err
			}
		}
	}
	return chores, nil
}

// Get returns full details for one chore.
func (m *ChoreManager) Get(ctx context.Context, choreID int) (*Chore, error) {
	details, err := m.client.Chore(ctx, choreID)
	if err != nil || details == nil {
		return nil, err
	}
	return NewChoreFromDetails(details), nil
}

// Execute records a chore execution. A zero doneBy leaves the user to the
// server; a zero trackedTime means now.
func (m *ChoreManager) Execute(ctx context.Context, choreID, doneBy int, trackedTime time.Time, skipped bool) error {
	return m.client.ExecuteChore(ctx, choreID, doneBy, trackedTime, skipped)
}

// UndoExecution reverts a chore execution server-side.
func (m *ChoreManager) UndoExecution(ctx context.Context, executionID int) error {
	return m.client.UndoChoreExecution(ctx, executionID)
}

// CalculateNextAssignments recalculates next assignments for all chores.
func (m *ChoreManager) CalculateNextAssignments(ctx context.Context) error {
	return m.client.CalculateChoreAssignments(ctx)
}

// Merge merges removeID into keepID.
func (m *ChoreManager) Merge(ctx context.Context, keepID, removeID int) error {
	return m.client.MergeChores(ctx, keepID, removeID)
}
