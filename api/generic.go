package api

import (
	"context"
	"fmt"
)

// EntityType names an object kind on the generic objects/{type} CRUD surface.
type EntityType string

const (
	EntityProducts            EntityType = "products"
	EntityProductBarcodes     EntityType = "product_barcodes"
	EntityProductGroups       EntityType = "product_groups"
	EntityQuantityUnits       EntityType = "quantity_units"
	EntityLocations           EntityType = "locations"
	EntityShoppingLocations   EntityType = "shopping_locations"
	EntityShoppingList        EntityType = "shopping_list"
	EntityShoppingLists       EntityType = "shopping_lists"
	EntityRecipes             EntityType = "recipes"
	EntityRecipePositions     EntityType = "recipes_pos"
	EntityRecipeNestings      EntityType = "recipes_nestings"
	EntityMealPlan            EntityType = "meal_plan"
	EntityMealPlanSections    EntityType = "meal_plan_sections"
	EntityChores              EntityType = "chores"
	EntityChoresLog           EntityType = "chores_log"
	EntityTasks               EntityType = "tasks"
	EntityTaskCategories      EntityType = "task_categories"
	EntityBatteries           EntityType = "batteries"
	EntityBatteryChargeCycles EntityType = "battery_charge_cycles"
	EntityEquipment           EntityType = "equipment"
	EntityStockLog            EntityType = "stock_log"
	EntityUserfields          EntityType = "userfields"
	EntityUserentities        EntityType = "userentities"
	EntityUserobjects         EntityType = "userobjects"
	EntityAPIKeys             EntityType = "api_keys"
)

func (e EntityType) String() string {
	return string(e)
}

// Objects returns the raw JSON array of all objects of an entity type.
func (c *Client) Objects(ctx context.Context, entityType EntityType, filters []string) ([]byte, error) {
	return c.Get(ctx, fmt.Sprintf("objects/%s", entityType), filters)
}

// GenericList returns all objects of an entity type as untyped maps.
func (c *Client) GenericList(ctx context.Context, entityType EntityType, filters []string) ([]map[string]any, error) {
	body, err := c.Objects(ctx, entityType, filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[map[string]any](body)
}

// GenericGet returns a single object by entity type and ID.
func (c *Client) GenericGet(ctx context.Context, entityType EntityType, objectID int) (map[string]any, error) {
	body, err := c.Get(ctx, fmt.Sprintf("objects/%s/%d", entityType, objectID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseObject(body)
}

// GenericCreate creates a new object of an entity type. The server answers
// with the created object id.
func (c *Client) GenericCreate(ctx context.Context, entityType EntityType, data any) (map[string]any, error) {
	body, err := c.Post(ctx, fmt.Sprintf("objects/%s", entityType), data)
	if err != nil || body == nil {
		return nil, err
	}
	return parseObject(body)
}

// GenericUpdate updates an existing object.
func (c *Client) GenericUpdate(ctx context.Context, entityType EntityType, objectID int, data any) error {
	_, err := c.Put(ctx, fmt.Sprintf("objects/%s/%d", entityType, objectID), data)
	return err
}

// GenericDelete deletes an object by entity type and ID.
func (c *Client) GenericDelete(ctx context.Context, entityType EntityType, objectID int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("objects/%s/%d", entityType, objectID))
	return err
}

// Userfields returns the custom key/value bag attached to an entity object.
func (c *Client) Userfields(ctx context.Context, entity string, objectID int) (Userfields, error) {
	body, err := c.Get(ctx, fmt.Sprintf("userfields/%s/%d", entity, objectID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	fields, err := parseObject(body)
	if err != nil {
		return nil, err
	}
	return Userfields(fields), nil
}

// SetUserfield stores one custom key/value on an entity object.
func (c *Client) SetUserfield(ctx context.Context, entity string, objectID int, key string, value any) error {
	_, err := c.Put(ctx, fmt.Sprintf("userfields/%s/%d", entity, objectID), map[string]any{key: value})
	return err
}
