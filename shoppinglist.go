package grocy

import (
	"context"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// ShoppingListProduct represents one item on a shopping list. ProductID is
// nil for free-text items; FetchDetails resolves the product when present.
type ShoppingListProduct struct {
	ID               int
	ShoppingListID   int
	ProductID        *int
	Note             string
	Amount           float64
	Done             bool
	CreatedTimestamp time.Time

	Product *Product
}

// NewShoppingListProductFromResponse builds a ShoppingListProduct from its
// wire representation.
func NewShoppingListProductFromResponse(resp *api.ShoppingListItemResponse) *ShoppingListProduct {
	item := &ShoppingListProduct{
		ID:               int(resp.ID),
		ShoppingListID:   int(resp.ShoppingListID),
		ProductID:        resp.ProductID.Pointer(),
		Note:             resp.Note.String,
		Done:             resp.Done != 0,
		CreatedTimestamp: resp.RowCreatedTimestamp.Time,
	}
	if resp.Amount.Valid {
		item.Amount = resp.Amount.Float64
	}
	return item
}

// FetchDetails resolves the referenced product. Free-text items are left
// untouched.
func (i *ShoppingListProduct) FetchDetails(ctx context.Context, client *api.Client) error {
	if i.ProductID == nil {
		return nil
	}
	details, err := client.Product(ctx, *i.ProductID)
	if err != nil {
		return err
	}
	if details != nil {
		i.Product = NewProductFromDetails(details)
	}
	return nil
}

// ShoppingListManager provides shopping list operations.
type ShoppingListManager struct {
	client *api.Client
}

// Items returns all shopping list items. With opts.Details each item's
// product is resolved, sequentially in list order.
func (m *ShoppingListManager) Items(ctx context.Context, opts ListOptions) ([]*ShoppingListProduct, error) {
	data, err := m.client.ShoppingList(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	items := make([]*ShoppingListProduct, 0, len(data))
	for i := range data {
		items = append(items, NewShoppingListProductFromResponse(&data[i]))
	}
	if opts.Details {
		for _, item := range items {
			if err := item.FetchDetails(ctx, m.client); err != nil {
				return nil, err
			}
		}
	}
	return items, nil
}

// AddProduct puts a product on a shopping list. A zero quantityUnitID keeps
// the product's default unit.
func (m *ShoppingListManager) AddProduct(ctx context.Context, productID, shoppingListID int, amount float64, quantityUnitID int) error {
	return m.client.AddProductToShoppingList(ctx, productID, shoppingListID, amount, quantityUnitID)
}

// RemoveProduct removes an amount of a product from a shopping list.
func (m *ShoppingListManager) RemoveProduct(ctx context.Context, productID, shoppingListID int, amount float64) error {
	return m.client.RemoveProductFromShoppingList(ctx, productID, shoppingListID, amount)
}

// Clear removes every item from a shopping list.
func (m *ShoppingListManager) Clear(ctx context.Context, shoppingListID int) error {
	return m.client.ClearShoppingList(ctx, shoppingListID)
}

// AddMissingProducts puts all below-minimum products on a list. A zero
// shoppingListID targets the server default list.
func (m *ShoppingListManager) AddMissingProducts(ctx context.Context, shoppingListID int) error {
	return m.client.AddMissingProductsToShoppingList(ctx, shoppingListID)
}

// AddOverdueProducts puts all overdue products on a list.
func (m *ShoppingListManager) AddOverdueProducts(ctx context.Context, shoppingListID int) error {
	return m.client.AddOverdueProductsToShoppingList(ctx, shoppingListID)
}

// AddExpiredProducts puts all expired products on a list.
func (m *ShoppingListManager) AddExpiredProducts(ctx context.Context, shoppingListID int) error {
	return m.client.AddExpiredProductsToShoppingList(ctx, shoppingListID)
}

// MarkItem sets the done flag of a shopping list item.
func (m *ShoppingListManager) MarkItem(ctx context.Context, itemID int, done bool) error {
	return m.client.MarkShoppingListItem(ctx, itemID, done)
}
