package grocy

import (
	"context"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// Battery represents a battery with its charge tracking state. Constructors
// built from the list surface only fill the summary fields; FetchDetails
// completes the rest.
type Battery struct {
	ID   int
	Name string

	Description        string
	UsedIn             string
	ChargeIntervalDays int
	CreatedTimestamp   time.Time
	Userfields         api.Userfields

	ChargeCyclesCount       int
	LastCharged             *time.Time
	LastTrackedTime         *time.Time
	NextEstimatedChargeTime *time.Time
}

// NewBatteryFromCurrent builds a Battery from its list summary.
func NewBatteryFromCurrent(resp *api.CurrentBatteryResponse) *Battery {
	return &Battery{
		ID:                      int(resp.ID),
		LastTrackedTime:         resp.LastTrackedTime.Pointer(),
		NextEstimatedChargeTime: resp.NextEstimatedChargeTime.Pointer(),
	}
}

// NewBatteryFromDetails builds a fully populated Battery.
func NewBatteryFromDetails(resp *api.BatteryDetailsResponse) *Battery {
	b := &Battery{}
	b.applyDetails(resp)
	return b
}

func (b *Battery) applyDetails(resp *api.BatteryDetailsResponse) {
	b.ID = int(resp.Battery.ID)
	b.Name = resp.Battery.Name
	b.Description = resp.Battery.Description.String
	b.UsedIn = resp.Battery.UsedIn.String
	b.ChargeIntervalDays = int(resp.Battery.ChargeIntervalDays)
	b.CreatedTimestamp = resp.Battery.CreatedTimestamp.Time
	b.Userfields = resp.Battery.Userfields
	b.ChargeCyclesCount = int(resp.ChargeCyclesCount)
	b.LastCharged = resp.LastCharged.Pointer()
	b.LastTrackedTime = resp.LastTrackedTime.Pointer()
	b.NextEstimatedChargeTime = resp.NextEstimatedChargeTime.Pointer()
}

// FetchDetails loads the full battery details and merges them into the
// receiver. Safe to call more than once; every call refetches.
func (b *Battery) FetchDetails(ctx context.Context, client *api.Client) error {
	details, err := client.Battery(ctx, b.ID)
	if err != nil {
		return err
	}
	if details == nil {
		return nil
	}
	b.applyDetails(details)
	return nil
}

// BatteryManager provides battery tracking operations.
type BatteryManager struct {
	client *api.Client
}

// List returns all batteries. With opts.Details each battery is hydrated
// with one extra request, sequentially in list order.
func (m *BatteryManager) List(ctx context.Context, opts ListOptions) ([]*Battery, error) {
	data, err := m.client.Batteries(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	batteries := make([]*Battery, 0, len(data))
	for i := range data {
		batteries = append(batteries, NewBatteryFromCurrent(&data[i]))
	}
	if opts.Details {
		for _, b := range batteries {
			if err := b.FetchDetails(ctx, m.client); err != nil {
				return nil, err
			}
		}
	}
	return batteries, nil
}

// Get returns full details for one battery.
func (m *BatteryManager) Get(ctx context.Context, batteryID int) (*Battery, error) {
	details, err := m.client.Battery(ctx, batteryID)
	if err != nil || details == nil {
		return nil, err
	}
	return NewBatteryFromDetails(details), nil
}

// Charge records a charge cycle. A zero trackedTime means now.
func (m *BatteryManager) Charge(ctx context.Context, batteryID int, trackedTime time.Time) error {
	return m.client.ChargeBattery(ctx, batteryID, trackedTime)
}

// UndoCharge reverts a charge cycle server-side.
func (m *BatteryManager) UndoCharge(ctx context.Context, chargeCycleID int) error {
	return m.client.UndoBatteryCharge(ctx, chargeCycleID)
}
