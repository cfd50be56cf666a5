package api

import (
	"context"
	"fmt"
	"time"
)

// CurrentBatteryResponse represents the lightweight battery summary returned
// by the batteries list endpoint
type CurrentBatteryResponse struct {
	ID                      Int      `json:"id"`
	LastTrackedTime         NullTime `json:"last_tracked_time"`
	NextEstimatedChargeTime NullTime `json:"next_estimated_charge_time"`
}

func (b *CurrentBatteryResponse) validate() error {
	if b.ID == 0 {
		return missingField("current battery", "id")
	}
	return nil
}

// BatteryData represents a battery entity
type BatteryData struct {
	ID                 Int        `json:"id"`
	Name               string     `json:"name"`
	Description        NullString `json:"description"`
	UsedIn             NullString `json:"used_in"`
	ChargeIntervalDays Int        `json:"charge_interval_days"`
	CreatedTimestamp   Time       `json:"row_created_timestamp"`
	Userfields         Userfields `json:"userfields"`
}

func (b *BatteryData) validate() error {
	if b.ID == 0 {
		return missingField("battery", "id")
	}
	if b.Name == "" {
		return missingField("battery", "name")
	}
	return nil
}

// BatteryDetailsResponse represents full battery details, including the
// derived charge state
type BatteryDetailsResponse struct {
	Battery                 BatteryData `json:"battery"`
	ChargeCyclesCount       Int         `json:"charge_cycles_count"`
	LastCharged             NullTime    `json:"last_charged"`
	LastTrackedTime         NullTime    `json:"last_tracked_time"`
	NextEstimatedChargeTime NullTime    `json:"next_estimated_charge_time"`
}

func (b *BatteryDetailsResponse) validate() error {
	return b.Battery.validate()
}

// Batteries returns all batteries as lightweight summaries.
func (c *Client) Batteries(ctx context.Context, filters []string) ([]CurrentBatteryResponse, error) {
	body, err := c.Get(ctx, "batteries", filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[CurrentBatteryResponse](body)
}

// Battery returns full details for a single battery.
func (c *Client) Battery(ctx context.Context, batteryID int) (*BatteryDetailsResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("batteries/%d", batteryID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[BatteryDetailsResponse](body)
}

// ChargeBattery records a charge cycle. A zero trackedTime means now.
func (c *Client) ChargeBattery(ctx context.Context, batteryID int, trackedTime time.Time) error {
	if trackedTime.IsZero() {
		trackedTime = time.Now()
	}
	data := map[string]any{"tracked_time": FormatTime(trackedTime)}
	_, err := c.Post(ctx, fmt.Sprintf("batteries/%d/charge", batteryID), data)
	return err
}

// UndoBatteryCharge reverts a battery charge cycle server-side.
func (c *Client) UndoBatteryCharge(ctx context.Context, chargeCycleID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("batteries/charge-cycles/%d/undo", chargeCycleID), map[string]any{})
	return err
}
