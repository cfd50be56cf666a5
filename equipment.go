package grocy

import (
	"context"
	"fmt"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// Equipment represents a piece of household equipment.
type Equipment struct {
	ID                        int
	Name                      string
	Description               string
	InstructionManualFileName string
	CreatedTimestamp          time.Time
	Userfields                api.Userfields

	LastMaintenance              *time.Time
	NextEstimatedMaintenanceTime *time.Time
}

// NewEquipmentFromData builds an Equipment from the bare entity.
func NewEquipmentFromData(data *api.EquipmentData) *Equipment {
	e := &Equipment{}
	e.applyData(data)
	return e
}

// NewEquipmentFromDetails builds an Equipment including its maintenance
// state.
func NewEquipmentFromDetails(resp *api.EquipmentDetailsResponse) *Equipment {
	e := &Equipment{}
	e.applyData(&resp.Equipment)
	e.LastMaintenance = resp.LastMaintenance.Pointer()
	e.NextEstimatedMaintenanceTime = resp.NextEstimatedMaintenanceTime.Pointer()
	return e
}

func (e *Equipment) applyData(data *api.EquipmentData) {
	e.ID = int(data.ID)
	e.Name = data.Name
	e.Description = data.Description.String
	e.InstructionManualFileName = data.InstructionManualFileName.String
	e.CreatedTimestamp = data.CreatedTimestamp.Time
	e.Userfields = data.Userfields
}

// FetchDetails reloads the equipment entity. Safe to call more than once;
// every call refetches.
func (e *Equipment) FetchDetails(ctx context.Context, client *api.Client) error {
	details, err := client.Equipment(ctx, e.ID)
	if err != nil {
		return err
	}
	if details == nil {
		return nil
	}
	e.applyData(&details.Equipment)
	e.LastMaintenance = details.LastMaintenance.Pointer()
	e.NextEstimatedMaintenanceTime = details.NextEstimatedMaintenanceTime.Pointer()
	return nil
}

// EquipmentManager provides equipment operations.
type EquipmentManager struct {
	client *api.Client
}

// List returns all equipment.
func (m *EquipmentManager) List(ctx context.Context, opts ListOptions) ([]*Equipment, error) {
	data, err := m.client.AllEquipment(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	items := make([]*Equipment, 0, len(data))
	for i := range data {
		items = append(items, NewEquipmentFromData(&data[i]))
	}
	return items, nil
}

// Get returns one equipment item by ID.
func (m *EquipmentManager) Get(ctx context.Context, equipmentID int) (*Equipment, error) {
	details, err := m.client.Equipment(ctx, equipmentID)
	if err != nil || details == nil {
		return nil, err
	}
	return NewEquipmentFromDetails(details), nil
}

// GetByName returns the equipment item with an exactly matching name, or
// (nil, nil) when no item matches.
func (m *EquipmentManager) GetByName(ctx context.Context, name string) (*Equipment, error) {
	data, err := m.client.AllEquipment(ctx, []string{fmt.Sprintf("name=%s", name)})
	if err != nil || len(data) == 0 {
		return nil, err
	}
	return NewEquipmentFromData(&data[0]), nil
}
