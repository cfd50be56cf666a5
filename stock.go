package grocy

import (
	"context"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// Volatile groups the stock warnings the server computes: products due soon,
// past their due date, expired, and below their minimum stock amount.
type Volatile struct {
	Due     []*Product
	Overdue []*Product
	Expired []*Product
	Missing []*Product
}

// StockManager provides stock level and stock movement operations.
type StockManager struct {
	client *api.Client
}

// Current returns all products currently in stock. With opts.Details each
// product is hydrated with one extra request, sequentially in list order.
func (m *StockManager) Current(ctx context.Context, opts ListOptions) ([]*Product, error) {
	stock, err := m.client.Stock(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]*Product, 0, len(stock))
	for i := range stock {
		products = append(products, NewProductFromStock(&stock[i]))
	}
	if opts.Details {
		for _, p := range products {
			if err := p.FetchDetails(ctx, m.client); err != nil {
				return nil, err
			}
		}
	}
	return products, nil
}

// Volatile returns the server-computed stock warnings.
func (m *StockManager) Volatile(ctx context.Context) (*Volatile, error) {
	resp, err := m.client.VolatileStock(ctx)
	if err != nil || resp == nil {
		return nil, err
	}
	fromStock := func(items []api.CurrentStockResponse) []*Product {
		products := make([]*Product, 0, len(items))
		for i := range items {
			products = append(products, NewProductFromStock(&items[i]))
		}
		return products
	}
	v := &Volatile{
		Due:     fromStock(resp.DueProducts),
		Overdue: fromStock(resp.OverdueProducts),
		Expired: fromStock(resp.ExpiredProducts),
		Missing: make([]*Product, 0, len(resp.MissingProducts)),
	}
	for i := range resp.MissingProducts {
		v.Missing = append(v.Missing, NewProductFromMissing(&resp.MissingProducts[i]))
	}
	return v, nil
}

// Product returns a fully hydrated product by ID.
func (m *StockManager) Product(ctx context.Context, productID int) (*Product, error) {
	details, err := m.client.Product(ctx, productID)
	if err != nil || details == nil {
		return nil, err
	}
	return NewProductFromDetails(details), nil
}

// ProductByBarcode returns a fully hydrated product by barcode.
func (m *StockManager) ProductByBarcode(ctx context.Context, barcode string) (*Product, error) {
	details, err := m.client.ProductByBarcode(ctx, barcode)
	if err != nil || details == nil {
		return nil, err
	}
	return NewProductFromDetails(details), nil
}

// AllProducts returns every product entity, in stock or not.
func (m *StockManager) AllProducts(ctx context.Context, opts ListOptions) ([]*Product, error) {
	data, err := m.client.Products(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	products := make([]*Product, 0, len(data))
	for i := range data {
		products = append(products, NewProductFromData(&data[i]))
	}
	if opts.Details {
		for _, p := range products {
			if err := p.FetchDetails(ctx, m.client); err != nil {
				return nil, err
			}
		}
	}
	return products, nil
}

// Groups returns all product groups.
func (m *StockManager) Groups(ctx context.Context, opts ListOptions) ([]*Group, error) {
	data, err := m.client.ProductGroups(ctx, opts.Filters)
	if err != nil {
		return nil, err
	}
	groups := make([]*Group, 0, len(data))
	for i := range data {
		groups = append(groups, NewGroupFromData(&data[i]))
	}
	return groups, nil
}

// Add increases stock of a product as a purchase.
func (m *StockManager) Add(ctx context.Context, productID int, amount, price float64, bestBefore time.Time) error {
	_, err := m.client.AddProduct(ctx, productID, amount, price, bestBefore, api.TransactionPurchase)
	return err
}

// Consume removes stock of a product.
func (m *StockManager) Consume(ctx context.Context, productID int, amount float64, spoiled bool) error {
	return m.client.ConsumeProduct(ctx, productID, amount, spoiled, api.TransactionConsume, true)
}

// Open marks an amount of a product as opened.
func (m *StockManager) Open(ctx context.Context, productID int, amount float64) error {
	return m.client.OpenProduct(ctx, productID, amount, true)
}

// Inventory corrects the stock amount of a product and returns a stub for
// the corrected product built from the first resulting booking.
func (m *StockManager) Inventory(ctx context.Context, productID int, newAmount float64, req api.InventoryRequest) (*Product, error) {
	booking, err := m.client.InventoryProduct(ctx, productID, newAmount, req)
	if err != nil || booking == nil {
		return nil, err
	}
	return NewProductFromStockLog(booking), nil
}

// Transfer moves stock of a product between locations.
func (m *StockManager) Transfer(ctx context.Context, productID int, amount float64, locationFrom, locationTo int) error {
	return m.client.TransferProduct(ctx, productID, amount, locationFrom, locationTo)
}

// AddByBarcode increases stock of a product identified by barcode.
func (m *StockManager) AddByBarcode(ctx context.Context, barcode string, amount, price float64, bestBefore time.Time) error {
	_, err := m.client.AddProductByBarcode(ctx, barcode, amount, price, bestBefore)
	return err
}

// ConsumeByBarcode removes stock of a product identified by barcode.
func (m *StockManager) ConsumeByBarcode(ctx context.Context, barcode string, amount float64, spoiled bool) error {
	_, err := m.client.ConsumeProductByBarcode(ctx, barcode, amount, spoiled)
	return err
}

// OpenByBarcode marks an amount of a product as opened by barcode.
func (m *StockManager) OpenByBarcode(ctx context.Context, barcode string, amount float64) error {
	return m.client.OpenProductByBarcode(ctx, barcode, amount)
}

// InventoryByBarcode corrects the stock amount by barcode.
func (m *StockManager) InventoryByBarcode(ctx context.Context, barcode string, newAmount float64, req api.InventoryRequest) (*Product, error) {
	booking, err := m.client.InventoryProductByBarcode(ctx, barcode, newAmount, req)
	if err != nil || booking == nil {
		return nil, err
	}
	return NewProductFromStockLog(booking), nil
}

// TransferByBarcode moves stock between locations by barcode.
func (m *StockManager) TransferByBarcode(ctx context.Context, barcode string, amount float64, locationFrom, locationTo int) error {
	return m.client.TransferProductByBarcode(ctx, barcode, amount, locationFrom, locationTo)
}

// MergeProducts merges removeID into keepID.
func (m *StockManager) MergeProducts(ctx context.Context, keepID, removeID int) error {
	return m.client.MergeProducts(ctx, keepID, removeID)
}

// Entry returns a single stock entry.
func (m *StockManager) Entry(ctx context.Context, entryID int) (*api.StockEntryResponse, error) {
	return m.client.StockEntry(ctx, entryID)
}

// EditEntry updates fields of a stock entry. Keys follow the wire names.
func (m *StockManager) EditEntry(ctx context.Context, entryID int, fields map[string]any) error {
	return m.client.EditStockEntry(ctx, entryID, fields)
}

// ProductEntries returns all stock entries for a product.
func (m *StockManager) ProductEntries(ctx context.Context, productID int) ([]api.StockEntryResponse, error) {
	return m.client.ProductStockEntries(ctx, productID)
}

// ProductLocations returns every location holding stock of a product.
func (m *StockManager) ProductLocations(ctx context.Context, productID int) ([]api.StockLocationResponse, error) {
	return m.client.ProductStockLocations(ctx, productID)
}

// PriceHistory returns the price history of a product.
func (m *StockManager) PriceHistory(ctx context.Context, productID int) ([]api.PriceHistoryResponse, error) {
	return m.client.ProductPriceHistory(ctx, productID)
}

// EntriesByLocation returns all stock entries at a location.
func (m *StockManager) EntriesByLocation(ctx context.Context, locationID int) ([]api.StockEntryResponse, error) {
	return m.client.StockEntriesByLocation(ctx, locationID)
}

// Booking returns a stock booking by ID.
func (m *StockManager) Booking(ctx context.Context, bookingID int) (*api.StockBookingResponse, error) {
	return m.client.StockBooking(ctx, bookingID)
}

// UndoBooking reverts a stock booking server-side.
func (m *StockManager) UndoBooking(ctx context.Context, bookingID int) error {
	return m.client.UndoStockBooking(ctx, bookingID)
}

// Transactions returns all log entries belonging to a transaction.
func (m *StockManager) Transactions(ctx context.Context, transactionID string) ([]api.StockLogResponse, error) {
	return m.client.StockTransactions(ctx, transactionID)
}

// UndoTransaction reverts a whole stock transaction server-side.
func (m *StockManager) UndoTransaction(ctx context.Context, transactionID string) error {
	return m.client.UndoStockTransaction(ctx, transactionID)
}

// ExternalBarcodeLookup queries the configured external barcode lookup
// plugin. The result shape is plugin-defined.
func (m *StockManager) ExternalBarcodeLookup(ctx context.Context, barcode string) (map[string]any, error) {
	return m.client.ExternalBarcodeLookup(ctx, barcode)
}
