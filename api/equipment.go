package api

import (
	"context"
	"fmt"
)

// EquipmentData represents an equipment entity
type EquipmentData struct {
	ID                        Int        `json:"id"`
	Name                      string     `json:"name"`
	Description               NullString `json:"description"`
	InstructionManualFileName NullString `json:"instruction_manual_file_name"`
	CreatedTimestamp          Time       `json:"row_created_timestamp"`
	Userfields                Userfields `json:"userfields"`
}

func (e *EquipmentData) validate() error {
	if e.ID == 0 {
		return missingField("equipment", "id")
	}
	if e.Name == "" {
		return missingField("equipment", "name")
	}
	return nil
}

// EquipmentDetailsResponse represents full equipment details, including the
// derived maintenance state
type EquipmentDetailsResponse struct {
	Equipment                    EquipmentData `json:"equipment"`
	LastMaintenance              NullTime      `json:"last_maintenance"`
	NextEstimatedMaintenanceTime NullTime      `json:"next_estimated_maintenance_time"`
}

func (e *EquipmentDetailsResponse) validate() error {
	return e.Equipment.validate()
}

// AllEquipment returns all equipment items.
func (c *Client) AllEquipment(ctx context.Context, filters []string) ([]EquipmentData, error) {
	body, err := c.Get(ctx, "objects/equipment", filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[EquipmentData](body)
}

// Equipment returns details of a specific equipment item. The objects surface
// returns the bare entity; the derived maintenance fields stay absent unless
// the server provides them.
func (c *Client) Equipment(ctx context.Context, equipmentID int) (*EquipmentDetailsResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("objects/equipment/%d", equipmentID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	data, err := parse[EquipmentData](body)
	if err != nil {
		return nil, err
	}
	return &EquipmentDetailsResponse{Equipment: *data}, nil
}
