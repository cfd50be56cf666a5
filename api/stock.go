package api

import (
	"context"
	"fmt"
	"time"
)

// QuantityUnitData represents a quantity unit entity
type QuantityUnitData struct {
	ID                  Int        `json:"id"`
	Name                string     `json:"name"`
	NamePlural          NullString `json:"name_plural"`
	Description         NullString `json:"description"`
	RowCreatedTimestamp Time       `json:"row_created_timestamp"`
}

func (q *QuantityUnitData) validate() error {
	if q.ID == 0 {
		return missingField("quantity unit", "id")
	}
	if q.Name == "" {
		return missingField("quantity unit", "name")
	}
	return nil
}

// LocationData represents a storage location entity
type LocationData struct {
	ID                  Int        `json:"id"`
	Name                string     `json:"name"`
	Description         NullString `json:"description"`
	RowCreatedTimestamp Time       `json:"row_created_timestamp"`
}

func (l *LocationData) validate() error {
	if l.ID == 0 {
		return missingField("location", "id")
	}
	if l.Name == "" {
		return missingField("location", "name")
	}
	return nil
}

// ProductData represents a product entity
type ProductData struct {
	ID                       Int        `json:"id"`
	Name                     string     `json:"name"`
	Description              NullString `json:"description"`
	LocationID               NullInt    `json:"location_id"`
	ShoppingLocationID       NullInt    `json:"shopping_location_id"`
	ProductGroupID           NullInt    `json:"product_group_id"`
	QuIDStock                Int        `json:"qu_id_stock"`
	QuIDPurchase             Int        `json:"qu_id_purchase"`
	PictureFileName          NullString `json:"picture_file_name"`
	AllowPartialUnitsInStock Bool       `json:"allow_partial_units_in_stock"`
	RowCreatedTimestamp      Time       `json:"row_created_timestamp"`
	MinStockAmount           NullFloat  `json:"min_stock_amount"`
	DefaultBestBeforeDays    Int        `json:"default_best_before_days"`
}

func (p *ProductData) validate() error {
	if p.ID == 0 {
		return missingField("product", "id")
	}
	if p.Name == "" {
		return missingField("product", "name")
	}
	return nil
}

// CurrentStockResponse represents a product's current stock summary
type CurrentStockResponse struct {
	ProductID              Int         `json:"product_id"`
	Amount                 Float       `json:"amount"`
	BestBeforeDate         Time        `json:"best_before_date"`
	AmountOpened           Float       `json:"amount_opened"`
	AmountAggregated       Float       `json:"amount_aggregated"`
	AmountOpenedAggregated Float       `json:"amount_opened_aggregated"`
	IsAggregatedAmount     Bool        `json:"is_aggregated_amount"`
	Product                ProductData `json:"product"`
}

func (s *CurrentStockResponse) validate() error {
	if s.ProductID == 0 {
		return missingField("current stock", "product_id")
	}
	if s.BestBeforeDate.IsZero() {
		return missingField("current stock", "best_before_date")
	}
	if s.AmountOpenedAggregated > s.AmountAggregated {
		return invalidf("current stock for product %d: opened aggregated amount %v exceeds aggregated amount %v",
			s.ProductID, s.AmountOpenedAggregated, s.AmountAggregated)
	}
	return s.Product.validate()
}

// MissingProductResponse represents a product below its minimum stock amount
type MissingProductResponse struct {
	ID              Int    `json:"id"`
	Name            string `json:"name"`
	AmountMissing   Float  `json:"amount_missing"`
	IsPartlyInStock Bool   `json:"is_partly_in_stock"`
}

func (m *MissingProductResponse) validate() error {
	if m.ID == 0 {
		return missingField("missing product", "id")
	}
	if m.Name == "" {
		return missingField("missing product", "name")
	}
	return nil
}

// VolatileStockResponse groups stock warnings: products due soon, past their
// date, expired, or missing entirely
type VolatileStockResponse struct {
	DueProducts     []CurrentStockResponse   `json:"due_products"`
	OverdueProducts []CurrentStockResponse   `json:"overdue_products"`
	ExpiredProducts []CurrentStockResponse   `json:"expired_products"`
	MissingProducts []MissingProductResponse `json:"missing_products"`
}

func (v *VolatileStockResponse) validate() error {
	for i := range v.DueProducts {
		if err := v.DueProducts[i].validate(); err != nil {
			return err
		}
	}
	for i := range v.OverdueProducts {
		if err := v.OverdueProducts[i].validate(); err != nil {
			return err
		}
	}
	for i := range v.ExpiredProducts {
		if err := v.ExpiredProducts[i].validate(); err != nil {
			return err
		}
	}
	for i := range v.MissingProducts {
		if err := v.MissingProducts[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// ProductBarcode represents a barcode attached to a product
type ProductBarcode struct {
	Barcode string    `json:"barcode"`
	Amount  NullFloat `json:"amount"`
}

func (b *ProductBarcode) validate() error {
	if b.Barcode == "" {
		return missingField("product barcode", "barcode")
	}
	return nil
}

// ProductDetailsResponse represents full product details, including nested
// quantity units and location
type ProductDetailsResponse struct {
	LastPurchased               NullTime         `json:"last_purchased"`
	LastUsed                    NullTime         `json:"last_used"`
	StockAmount                 Float            `json:"stock_amount"`
	StockAmountOpened           Float            `json:"stock_amount_opened"`
	NextBestBeforeDate          NullTime         `json:"next_best_before_date"`
	LastPrice                   NullFloat        `json:"last_price"`
	Product                     ProductData      `json:"product"`
	QuantityUnitStock           QuantityUnitData `json:"quantity_unit_stock"`
	DefaultQuantityUnitPurchase QuantityUnitData `json:"default_quantity_unit_purchase"`
	Barcodes                    []ProductBarcode `json:"product_barcodes"`
	Location                    *LocationData    `json:"location"`
}

func (d *ProductDetailsResponse) validate() error {
	if err := d.Product.validate(); err != nil {
		return err
	}
	if err := d.QuantityUnitStock.validate(); err != nil {
		return err
	}
	if err := d.DefaultQuantityUnitPurchase.validate(); err != nil {
		return err
	}
	for i := range d.Barcodes {
		if err := d.Barcodes[i].validate(); err != nil {
			return err
		}
	}
	if d.Location != nil {
		return d.Location.validate()
	}
	return nil
}

// StockLogResponse represents a stock transaction log entry
type StockLogResponse struct {
	ID              Int             `json:"id"`
	ProductID       Int             `json:"product_id"`
	Amount          Float           `json:"amount"`
	BestBeforeDate  Time            `json:"best_before_date"`
	PurchasedDate   Time            `json:"purchased_date"`
	UsedDate        NullTime        `json:"used_date"`
	Spoiled         Bool            `json:"spoiled"`
	StockID         string          `json:"stock_id"`
	TransactionID   string          `json:"transaction_id"`
	TransactionType TransactionType `json:"transaction_type"`
}

func (s *StockLogResponse) validate() error {
	if s.ID == 0 {
		return missingField("stock log", "id")
	}
	if s.ProductID == 0 {
		return missingField("stock log", "product_id")
	}
	if s.StockID == "" {
		return missingField("stock log", "stock_id")
	}
	if s.TransactionType == "" {
		return missingField("stock log", "transaction_type")
	}
	return nil
}

// StockEntryResponse represents a single stock entry
type StockEntryResponse struct {
	ID                  Int       `json:"id"`
	ProductID           Int       `json:"product_id"`
	Amount              Float     `json:"amount"`
	BestBeforeDate      NullTime  `json:"best_before_date"`
	PurchasedDate       NullTime  `json:"purchased_date"`
	StockID             string    `json:"stock_id"`
	Price               NullFloat `json:"price"`
	LocationID          NullInt   `json:"location_id"`
	ShoppingLocationID  NullInt   `json:"shopping_location_id"`
	OpenedDate          NullTime  `json:"opened_date"`
	RowCreatedTimestamp NullTime  `json:"row_created_timestamp"`
}

func (s *StockEntryResponse) validate() error {
	if s.ID == 0 {
		return missingField("stock entry", "id")
	}
	if s.ProductID == 0 {
		return missingField("stock entry", "product_id")
	}
	if s.StockID == "" {
		return missingField("stock entry", "stock_id")
	}
	return nil
}

// StockLocationResponse represents stock of a product at one location
type StockLocationResponse struct {
	ProductID  Int   `json:"product_id"`
	LocationID Int   `json:"location_id"`
	Amount     Float `json:"amount"`
}

func (s *StockLocationResponse) validate() error {
	if s.ProductID == 0 {
		return missingField("stock location", "product_id")
	}
	if s.LocationID == 0 {
		return missingField("stock location", "location_id")
	}
	return nil
}

// PriceHistoryResponse represents a price history entry for a product
type PriceHistoryResponse struct {
	Date               Time    `json:"date"`
	Price              Float   `json:"price"`
	ShoppingLocationID NullInt `json:"shopping_location_id"`
}

func (p *PriceHistoryResponse) validate() error {
	if p.Date.IsZero() {
		return missingField("price history", "date")
	}
	return nil
}

// StockBookingResponse represents a stock booking. Unlike StockLogResponse,
// the transaction type arrives as a raw string here because bookings can
// carry server-side types the log surface never emits.
type StockBookingResponse struct {
	ID                  Int      `json:"id"`
	ProductID           Int      `json:"product_id"`
	Amount              Float    `json:"amount"`
	BestBeforeDate      NullTime `json:"best_before_date"`
	PurchasedDate       NullTime `json:"purchased_date"`
	StockID             string   `json:"stock_id"`
	TransactionID       string   `json:"transaction_id"`
	TransactionType     string   `json:"transaction_type"`
	RowCreatedTimestamp NullTime `json:"row_created_timestamp"`
}

func (s *StockBookingResponse) validate() error {
	if s.ID == 0 {
		return missingField("stock booking", "id")
	}
	if s.ProductID == 0 {
		return missingField("stock booking", "product_id")
	}
	return nil
}

// InventoryRequest carries the optional parameters of an inventory
// correction. Zero-valued fields are omitted from the request body.
type InventoryRequest struct {
	BestBeforeDate     time.Time
	ShoppingLocationID int
	LocationID         int
	Price              *float64
}

func (r InventoryRequest) body(newAmount float64) map[string]any {
	data := map[string]any{"new_amount": newAmount}
	if !r.BestBeforeDate.IsZero() {
		data["best_before_date"] = FormatDate(r.BestBeforeDate)
	}
	if r.ShoppingLocationID != 0 {
		data["shopping_location_id"] = r.ShoppingLocationID
	}
	if r.LocationID != 0 {
		data["location_id"] = r.LocationID
	}
	if r.Price != nil {
		data["price"] = *r.Price
	}
	return data
}

// Stock returns all products currently in stock.
func (c *Client) Stock(ctx context.Context) ([]CurrentStockResponse, error) {
	body, err := c.Get(ctx, "stock", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[CurrentStockResponse](body)
}

// VolatileStock returns stock warnings (due, overdue, expired, missing).
func (c *Client) VolatileStock(ctx context.Context) (*VolatileStockResponse, error) {
	body, err := c.Get(ctx, "stock/volatile", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[VolatileStockResponse](body)
}

// Product returns detailed information for a single product.
func (c *Client) Product(ctx context.Context, productID int) (*ProductDetailsResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/products/%d", productID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[ProductDetailsResponse](body)
}

// ProductByBarcode returns detailed product information by barcode.
func (c *Client) ProductByBarcode(ctx context.Context, barcode string) (*ProductDetailsResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/products/by-barcode/%s", barcode), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[ProductDetailsResponse](body)
}

// AddProduct adds stock for a product and returns the resulting bookings.
func (c *Client) AddProduct(ctx context.Context, productID int, amount, price float64, bestBefore time.Time, transactionType TransactionType) ([]StockLogResponse, error) {
	data := map[string]any{
		"amount":           amount,
		"transaction_type": transactionType,
		"price":            price,
	}
	if !bestBefore.IsZero() {
		data["best_before_date"] = FormatDate(bestBefore)
	}
	body, err := c.Post(ctx, fmt.Sprintf("stock/products/%d/add", productID), data)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[StockLogResponse](body)
}

// ConsumeProduct consumes stock for a product.
func (c *Client) ConsumeProduct(ctx context.Context, productID int, amount float64, spoiled bool, transactionType TransactionType, allowSubstitution bool) error {
	data := map[string]any{
		"amount":                        amount,
		"spoiled":                       spoiled,
		"transaction_type":              transactionType,
		"allow_subproduct_substitution": allowSubstitution,
	}
	_, err := c.Post(ctx, fmt.Sprintf("stock/products/%d/consume", productID), data)
	return err
}

// OpenProduct marks stock of a product as opened.
func (c *Client) OpenProduct(ctx context.Context, productID int, amount float64, allowSubstitution bool) error {
	data := map[string]any{
		"amount":                        amount,
		"allow_subproduct_substitution": allowSubstitution,
	}
	_, err := c.Post(ctx, fmt.Sprintf("stock/products/%d/open", productID), data)
	return err
}

// InventoryProduct corrects the stock amount of a product and returns the
// first resulting booking.
func (c *Client) InventoryProduct(ctx context.Context, productID int, newAmount float64, req InventoryRequest) (*StockLogResponse, error) {
	body, err := c.Post(ctx, fmt.Sprintf("stock/products/%d/inventory", productID), req.body(newAmount))
	if err != nil || body == nil {
		return nil, err
	}
	return firstOf(parseList[StockLogResponse](body))
}

// TransferProduct moves stock of a product between locations.
func (c *Client) TransferProduct(ctx context.Context, productID int, amount float64, locationFrom, locationTo int) error {
	data := map[string]any{
		"amount":           amount,
		"location_id_from": locationFrom,
		"location_id_to":   locationTo,
	}
	_, err := c.Post(ctx, fmt.Sprintf("stock/products/%d/transfer", productID), data)
	return err
}

// AddProductByBarcode adds stock for a product identified by barcode.
func (c *Client) AddProductByBarcode(ctx context.Context, barcode string, amount, price float64, bestBefore time.Time) (*StockLogResponse, error) {
	data := map[string]any{
		"amount":           amount,
		"transaction_type": TransactionPurchase,
		"price":            price,
	}
	if !bestBefore.IsZero() {
		data["best_before_date"] = FormatDate(bestBefore)
	}
	body, err := c.Post(ctx, fmt.Sprintf("stock/products/by-barcode/%s/add", barcode), data)
	if err != nil || body == nil {
		return nil, err
	}
	return firstOf(parseList[StockLogResponse](body))
}

// ConsumeProductByBarcode consumes stock for a product identified by barcode.
func (c *Client) ConsumeProductByBarcode(ctx context.Context, barcode string, amount float64, spoiled bool) (*StockLogResponse, error) {
	data := map[string]any{
		"amount":           amount,
		"spoiled":          spoiled,
		"transaction_type": TransactionConsume,
	}
	body, err := c.Post(ctx, fmt.Sprintf("stock/products/by-barcode/%s/consume", barcode), data)
	if err != nil || body == nil {
		return nil, err
	}
	return firstOf(parseList[StockLogResponse](body))
}

// OpenProductByBarcode marks stock as opened by barcode.
func (c *Client) OpenProductByBarcode(ctx context.Context, barcode string, amount float64) error {
	_, err := c.Post(ctx, fmt.Sprintf("stock/products/by-barcode/%s/open", barcode), map[string]any{"amount": amount})
	return err
}

// InventoryProductByBarcode corrects the stock amount by barcode.
func (c *Client) InventoryProductByBarcode(ctx context.Context, barcode string, newAmount float64, req InventoryRequest) (*StockLogResponse, error) {
	body, err := c.Post(ctx, fmt.Sprintf("stock/products/by-barcode/%s/inventory", barcode), req.body(newAmount))
	if err != nil || body == nil {
		return nil, err
	}
	return firstOf(parseList[StockLogResponse](body))
}

// TransferProductByBarcode moves stock between locations by barcode.
func (c *Client) TransferProductByBarcode(ctx context.Context, barcode string, amount float64, locationFrom, locationTo int) error {
	data := map[string]any{
		"amount":           amount,
		"location_id_from": locationFrom,
		"location_id_to":   locationTo,
	}
	_, err := c.Post(ctx, fmt.Sprintf("stock/products/by-barcode/%s/transfer", barcode), data)
	return err
}

// MergeProducts merges two products into one.
func (c *Client) MergeProducts(ctx context.Context, keepID, removeID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("stock/products/%d/merge/%d", keepID, removeID), map[string]any{})
	return err
}

// StockEntry returns a single stock entry by ID.
func (c *Client) StockEntry(ctx context.Context, entryID int) (*StockEntryResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/entry/%d", entryID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[StockEntryResponse](body)
}

// EditStockEntry updates fields of a stock entry.
func (c *Client) EditStockEntry(ctx context.Context, entryID int, data map[string]any) error {
	_, err := c.Put(ctx, fmt.Sprintf("stock/entry/%d", entryID), data)
	return err
}

// ProductStockEntries returns all stock entries for a product.
func (c *Client) ProductStockEntries(ctx context.Context, productID int) ([]StockEntryResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/products/%d/entries", productID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[StockEntryResponse](body)
}

// ProductStockLocations returns every location holding stock of a product.
func (c *Client) ProductStockLocations(ctx context.Context, productID int) ([]StockLocationResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/products/%d/locations", productID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[StockLocationResponse](body)
}

// ProductPriceHistory returns the price history of a product.
func (c *Client) ProductPriceHistory(ctx context.Context, productID int) ([]PriceHistoryResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/products/%d/price-history", productID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[PriceHistoryResponse](body)
}

// StockEntriesByLocation returns all stock entries at a location.
func (c *Client) StockEntriesByLocation(ctx context.Context, locationID int) ([]StockEntryResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/locations/%d/entries", locationID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[StockEntryResponse](body)
}

// StockBooking returns a stock booking by ID.
func (c *Client) StockBooking(ctx context.Context, bookingID int) (*StockBookingResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/bookings/%d", bookingID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parse[StockBookingResponse](body)
}

// UndoStockBooking reverts a stock booking server-side.
func (c *Client) UndoStockBooking(ctx context.Context, bookingID int) error {
	_, err := c.Post(ctx, fmt.Sprintf("stock/bookings/%d/undo", bookingID), map[string]any{})
	return err
}

// StockTransactions returns all log entries belonging to a transaction.
func (c *Client) StockTransactions(ctx context.Context, transactionID string) ([]StockLogResponse, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/transactions/%s", transactionID), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[StockLogResponse](body)
}

// UndoStockTransaction reverts a whole stock transaction server-side.
func (c *Client) UndoStockTransaction(ctx context.Context, transactionID string) error {
	_, err := c.Post(ctx, fmt.Sprintf("stock/transactions/%s/undo", transactionID), map[string]any{})
	return err
}

// ExternalBarcodeLookup queries the server's configured external barcode
// lookup plugin. The payload shape is plugin-defined, so it stays untyped.
func (c *Client) ExternalBarcodeLookup(ctx context.Context, barcode string) (map[string]any, error) {
	body, err := c.Get(ctx, fmt.Sprintf("stock/barcodes/external-lookup/%s", barcode), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseObject(body)
}

// Products returns all product entities regardless of stock status.
func (c *Client) Products(ctx context.Context, filters []string) ([]ProductData, error) {
	body, err := c.Objects(ctx, EntityProducts, filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[ProductData](body)
}

// ProductGroups returns all product groups.
func (c *Client) ProductGroups(ctx context.Context, filters []string) ([]LocationData, error) {
	body, err := c.Get(ctx, "objects/product_groups", filters)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[LocationData](body)
}

// firstOf reduces a parsed response list to its first element.
func firstOf[T any](items []T, err error) (*T, error) {
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}
