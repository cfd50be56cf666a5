package grocy

import (
	"context"

	"github.com/grocyhq/go-grocy/api"
)

// CalendarManager provides access to the Grocy calendar.
type CalendarManager struct {
	client *api.Client
}

// ICal returns the calendar in iCal format.
func (m *CalendarManager) ICal(ctx context.Context) (string, error) {
	return m.client.CalendarICal(ctx)
}

// SharingLink returns the public sharing URL for the calendar.
func (m *CalendarManager) SharingLink(ctx context.Context) (string, error) {
	return m.client.CalendarSharingLink(ctx)
}
