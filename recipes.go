package grocy

import (
	"context"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// RecipeItem represents a recipe with its stock fulfillment state.
type RecipeItem struct {
	ID               int
	Name             string
	Description      string
	BaseServings     int
	DesiredServings  int
	PictureFileName  string
	CreatedTimestamp time.Time
	Userfields       api.Userfields

	NeedFulfilled                 *bool
	NeedFulfilledWithShoppingList *bool
	MissingProductsCount          *int
}

// NewRecipeFromDetails builds a RecipeItem from the recipe entity.
func NewRecipeFromDetails(resp *api.RecipeDetailsResponse) *RecipeItem {
	return &RecipeItem{
		ID:               int(resp.ID),
		Name:             resp.Name,
		Description:      resp.Description.String,
		BaseServings:     int(resp.BaseServings),
		DesiredServings:  int(resp.DesiredServings),
		PictureFileName:  resp.PictureFileName.String,
		CreatedTimestamp: resp.RowCreatedTimestamp.Time,
		Userfields:       resp.Userfields,
	}
}

func (r *RecipeItem) applyFulfillment(resp *api.RecipeFulfillmentResponse) {
	fulfilled := bool(resp.NeedFulfilled)
	withList := bool(resp.NeedFulfilledWithShoppingList)
	r.NeedFulfilled = &fulfilled
	r.NeedFulfilledWithShoppingList = &withList
	r.MissingProductsCount = resp.MissingProductsCount.Pointer()
}

// FetchFulfillment loads the recipe's stock fulfillment state.
func (r *RecipeItem) FetchFulfillment(ctx context.Context, client *api.Client) error {
	resp, err := client.RecipeFulfillment(ctx, r.ID)
	if err != nil {
		return err
	}
	if resp != nil {
		r.applyFulfillment(resp)
	}
	return nil
}

// RecipeManager provides recipe operations.
type RecipeManager struct {
	client *api.Client
}

// Get returns a recipe by ID.
func (m *RecipeManager) Get(ctx context.Context, recipeID int) (*RecipeItem, error) {
	resp, err := m.client.Recipe(ctx, recipeID)
	if err != nil || resp == nil {
		return nil, err
	}
	return NewRecipeFromDetails(resp), nil
}

// Consume consumes all ingredients of a recipe from stock.
func (m *RecipeManager) Consume(ctx context.Context, recipeID int) error {
	return m.client.ConsumeRecipe(ctx, recipeID)
}

// Fulfillment returns the fulfillment state for one recipe.
func (m *RecipeManager) Fulfillment(ctx context.Context, recipeID int) (*api.RecipeFulfillmentResponse, error) {
	return m.client.RecipeFulfillment(ctx, recipeID)
}

// AllFulfillments returns the fulfillment state for every recipe.
func (m *RecipeManager) AllFulfillments(ctx context.Context) ([]api.RecipeFulfillmentResponse, error) {
	return m.client.AllRecipesFulfillment(ctx)
}

// AddMissingToShoppingList puts a recipe's missing ingredients on the
// shopping list.
func (m *RecipeManager) AddMissingToShoppingList(ctx context.Context, recipeID int) error {
	return m.client.AddNotFulfilledToShoppingList(ctx, recipeID)
}

// Copy creates a copy of a recipe.
func (m *RecipeManager) Copy(ctx context.Context, recipeID int) error {
	return m.client.CopyRecipe(ctx, recipeID)
}
