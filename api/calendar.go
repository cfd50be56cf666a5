package api

import (
	"context"
	"encoding/json"
)

// CalendarICal returns the Grocy calendar in iCal format.
func (c *Client) CalendarICal(ctx context.Context) (string, error) {
	body, err := c.Get(ctx, "calendar/ical", nil)
	if err != nil || body == nil {
		return "", err
	}
	return string(body), nil
}

// CalendarSharingLink returns the public sharing URL for the calendar.
func (c *Client) CalendarSharingLink(ctx context.Context) (string, error) {
	body, err := c.Get(ctx, "calendar/ical/sharing-link", nil)
	if err != nil || body == nil {
		return "", err
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", wrapDecodeErr(err)
	}
	return resp.URL, nil
}
