package api

import (
	"context"
	"fmt"
)

// ShoppingListItemResponse represents a shopping list item
type ShoppingListItemResponse struct {
	ID                  Int        `json:"id"`
	ProductID           NullInt    `json:"product_id"`
	Note                NullString `json:"note"`
	Amount              NullFloat  `json:"amount"`
	RowCreatedTimestamp Time       `json:"row_created_timestamp"`
	ShoppingListID      Int        `json:"shopping_list_id"`
	Done                Int        `json:"done"`
}

func (s *ShoppingListItemResponse) validate() error {
	if s.ID == 0 {
		return missingField("shopping list item", "id")
	}
	if s.ShoppingListID == 0 {
		return missingField("shopping list item", "shopping_list_id")
	}
	return nil
}

// ShoppingList returns all shopping list items.
func (c *Client) ShoppingList(ctx context.Context, filters []string) ([]ShoppingListItemResponse, error) {
	body, err := c.Get(ctx, "objects/shopping_list", filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[ShoppingListItemResponse](body)
}

// AddProductToShoppingList puts a product on a shopping list. A zero
// quantityUnitID keeps the product's default unit.
func (c *Client) AddProductToShoppingList(ctx context.Context, productID, shoppingListID int, amount float64, quantityUnitID int) error {
	data := map[string]any{
		"product_id":     productID,
		"list_id":        shoppingListID,
		"product_amount": amount,
	}
	if quantityUnitID != 0 {
		data["qu_id"] = quantityUnitID
	}
	_, err := c.Post(ctx, "stock/shoppinglist/add-product", data)
	return err
}

// RemoveProductFromShoppingList removes an amount of a product from a list.
func (c *Client) RemoveProductFromShoppingList(ctx context.Context, productID, shoppingListID int, amount float64) error {
	data := map[string]any{
		"product_id":     productID,
		"list_id":        shoppingListID,
		"product_amount": amount,
	}
	_, err := c.Post(ctx, "stock/shoppinglist/remove-product", data)
	return err
}

// ClearShoppingList removes every item from a shopping list.
func (c *Client) ClearShoppingList(ctx context.Context, shoppingListID int) error {
	_, err := c.Post(ctx, "stock/shoppinglist/clear", map[string]any{"list_id": shoppingListID})
	return err
}

// AddMissingProductsToShoppingList puts all below-minimum products on a list.
// A zero shoppingListID targets the server default list.
func (c *Client) AddMissingProductsToShoppingList(ctx context.Context, shoppingListID int) error {
	var data map[string]any
	if shoppingListID != 0 {
		data = map[string]any{"list_id": shoppingListID}
	}
	_, err := c.Post(ctx, "stock/shoppinglist/add-missing-products", data)
	return err
}

// AddOverdueProductsToShoppingList puts all overdue products on a list.
func (c *Client) AddOverdueProductsToShoppingList(ctx context.Context, shoppingListID int) error {
	_, err := c.Post(ctx, "stock/shoppinglist/add-overdue-products", map[string]any{"list_id": shoppingListID})
	return err
}

// AddExpiredProductsToShoppingList puts all expired products on a list.
func (c *Client) AddExpiredProductsToShoppingList(ctx context.Context, shoppingListID int) error {
	_, err := c.Post(ctx, "stock/shoppinglist/add-expired-products", map[string]any{"list_id": shoppingListID})
	return err
}

// MarkShoppingListItem sets the done flag of a shopping list item.
func (c *Client) MarkShoppingListItem(ctx context.Context, itemID int, done bool) error {
	doneFlag := 0
	if done {
		doneFlag = 1
	}
	_, err := c.Put(ctx, fmt.Sprintf("objects/shopping_list/%d", itemID), map[string]any{"done": doneFlag})
	return err
}
