package api

import (
	"context"
	"fmt"
)

// RecipeDetailsResponse represents a recipe
type RecipeDetailsResponse struct {
	ID                  Int        `json:"id"`
	Name                string     `json:"name"`
	Description         NullString `json:"description"`
	BaseServings        Int        `json:"base_servings"`
	DesiredServings     Int        `json:"desired_servings"`
	PictureFileName     NullString `json:"picture_file_name"`
	RowCreatedTimestamp Time       `json:"row_created_timestamp"`
	Userfields          Userfields `json:"userfields"`
}

func (r *RecipeDetailsResponse) validate() error {
	if r.Name == "" {
		return missingField("recipe", "name")
	}
	return nil
}

// RecipeFulfillmentResponse represents the server-computed fulfillment status
// of a recipe
type RecipeFulfillmentResponse struct {
	RecipeID                      Int     `json:"recipe_id"`
	NeedFulfilled                 Bool    `json:"need_fulfilled"`
	NeedFulfilledWithShoppingList Bool    `json:"need_fulfilled_with_shopping_list"`
	MissingProductsCount          NullInt `json:"missing_products_count"`
}

func (r *RecipeFulfillmentResponse) validate() error {
	if r.RecipeID == 0 {
		return missingField("recipe fulfillment", "recipe_id")
	}
	return nil
}

// Recipe returns a recipe by ID.
func (c *Client) Recipe(ctx context.Context, recipeID int) (*RecipeDetailsResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("objects/recipes/%d", recipeID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[RecipeDetailsResponse](body)
}

// ConsumeRecipe consumes all ingredients of a recipe from stock.
func (c *Client) ConsumeRecipe(ctx context.Context, recipeID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("recipes/%d/consume", recipeID), nil)
	return err
}

// RecipeFulfillment returns the fulfillment status for one recipe.
func (c *Client) RecipeFulfillment(ctx context.Context, recipeID int) (*RecipeFulfillmentResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("recipes/%d/fulfillment", recipeID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[RecipeFulfillmentResponse](body)
}

// AllRecipesFulfillment returns the fulfillment status for every recipe.
func (c *Client) AllRecipesFulfillment(ctx context.Context) ([]RecipeFulfillmentResponse, error) {
	body, err := c.Get(ctx, "recipes/fulfillment", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[RecipeFulfillmentResponse](body)
}

// AddNotFulfilledToShoppingList puts a recipe's missing ingredients on the
// shopping list.
func (c *Client) AddNotFulfilledToShoppingList(ctx context.Context, recipeID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("recipes/%d/add-not-fulfilled-products-to-shoppinglist", recipeID), map[string]any{})
	return err
}

// CopyRecipe creates a copy of a recipe.
func (c *Client) CopyRecipe(ctx context.Context, recipeID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("recipes/%d/copy", recipeID), map[string]any{})
	return err
}
