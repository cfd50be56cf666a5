package grocy

import (
	"context"

	"github.com/grocyhq/go-grocy/api"
)

// GenericEntityManager provides untyped CRUD on any entity type the server
// knows. It is the escape hatch for entities the typed managers do not
// cover.
type GenericEntityManager struct {
	client *api.Client
}

// List returns all objects of an entity type as untyped maps.
func (m *GenericEntityManager) List(ctx context.Context, entityType api.EntityType, filters []string) ([]map[string]any, error) {
	return m.client.GenericList(ctx, entityType, filters)
}

// Get returns one object by entity type and ID.
func (m *GenericEntityManager) Get(ctx context.Context, entityType api.EntityType, objectID int) (map[string]any, error) {
	return m.client.GenericGet(ctx, entityType, objectID)
}

// Create creates a new object. The server answers with the created object
// id.
func (m *GenericEntityManager) Create(ctx context.Context, entityType api.EntityType, data any) (map[string]any, error) {
	return m.client.GenericCreate(ctx, entityType, data)
}

// Update updates an existing object.
func (m *GenericEntityManager) Update(ctx context.Context, entityType api.EntityType, objectID int, data any) error {
	return m.client.GenericUpdate(ctx, entityType, objectID, data)
}

// Delete deletes an object by entity type and ID.
func (m *GenericEntityManager) Delete(ctx context.Context, entityType api.EntityType, objectID int) error {
	return m.client.GenericDelete(ctx, entityType, objectID)
}

// Userfields returns the custom key/value bag attached to an object.
func (m *GenericEntityManager) Userfields(ctx context.Context, entityType api.EntityType, objectID int) (api.Userfields, error) {
	return m.client.Userfields(ctx, entityType.String(), objectID)
}

// SetUserfield stores one custom key/value on an object.
func (m *GenericEntityManager) SetUserfield(ctx context.Context, entityType api.EntityType, objectID int, key string, value any) error {
	return m.client.SetUserfield(ctx, entityType.String(), objectID, key, value)
}
