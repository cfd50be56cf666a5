package grocy

import (
	"context"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// ChoreLog represents one chore execution record. The record itself is
// immutable server-side; FetchDetails resolves the owning chore and the
// executing user.
type ChoreLog struct {
	ID                     int
	ChoreID                int
	TrackedTime            time.Time
	DoneByUserID           int
	CreatedTimestamp       time.Time
	Undone                 bool
	UndoneTimestamp        *time.Time
	Skipped                bool
	ScheduledExecutionTime *time.Time
	Userfields             api.Userfields

	Chore      *Chore
	DoneByUser *User
}

// NewChoreLogFromResponse builds a ChoreLog from its wire representation.
func NewChoreLogFromResponse(resp *api.ChoreLogResponse) *ChoreLog {
	return &ChoreLog{
		ID:                     int(resp.ID),
		ChoreID:                int(resp.ChoreID),
		TrackedTime:            resp.TrackedTime.Time,
		DoneByUserID:           int(resp.DoneByUserID),
		CreatedTimestamp:       resp.RowCreatedTimestamp.Time,
		Undone:                 bool(resp.Undone),
		UndoneTimestamp:        resp.UndoneTimestamp.Pointer(),
		Skipped:                bool(resp.Skipped),
		ScheduledExecutionTime: resp.ScheduledExecutionTime.Pointer(),
		Userfields:             resp.Userfields,
	}
}

// FetchDetails resolves the record's custom fields, its owning chore, and
// the executing user. Three requests in that order.
func (l *ChoreLog) FetchDetails(ctx context.Context, client *api.Client) error {
	fields, err := client.Userfields(ctx, api.EntityChoresLog.String(), l.ID)
	if err != nil {
		return err
	}
	if fields != nil {
		l.Userfields = fields
	}

	chore, err := client.Chore(ctx, l.ChoreID)
	if err != nil {
		return err
	}
	if chore != nil {
		l.Chore = NewChoreFromDetails(chore)
	}

	user, err := findUser(ctx, client, l.DoneByUserID)
	if err != nil {
		return err
	}
	l.DoneByUser = user
	return nil
}

// ChoreLogManager provides read access to chore execution records.
type ChoreLogManager struct {
	client *api.Client
}

// List returns chore execution records. With opts.Details each record is
// hydrated, sequentially in list order.
func (m *ChoreLogManager) List(ctx context.Context, opts ListOptions) ([]*ChoreLog, error) {
	data, err := m.client.ChoresLog(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	logs := make([]*ChoreLog, 0, len(data))
	for i := range data {
		logs = append(logs, NewChoreLogFromResponse(&data[i]))
	}
	if opts.Details {
		for _, l := range logs {
			if err := l.FetchDetails(ctx, m.client); err != nil {
				return nil, err
			}
		}
	}
	return logs, nil
}

// Get returns one chore execution record by ID.
func (m *ChoreLogManager) Get(ctx context.Context, choreLogID int) (*ChoreLog, error) {
	resp, err := m.client.ChoreLog(ctx, choreLogID)
	if err != nil || resp == nil {
		return nil, err
	}
	return NewChoreLogFromResponse(resp), nil
}
