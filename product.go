package grocy

import (
	"context"
	"time"

	"github.com/grocyhq/go-grocy/api"
)

// QuantityUnit represents a unit products are measured in.
type QuantityUnit struct {
	ID          int
	Name        string
	NamePlural  string
	Description string
}

// NewQuantityUnitFromData builds a QuantityUnit from its wire representation.
func NewQuantityUnitFromData(data *api.QuantityUnitData) *QuantityUnit {
	return &QuantityUnit{
		ID:          int(data.ID),
		Name:        data.Name,
		NamePlural:  data.NamePlural.String,
		Description: data.Description.String,
	}
}

// Location represents a storage location.
type Location struct {
	ID          int
	Name        string
	Description string
}

// NewLocationFromData builds a Location from its wire representation.
func NewLocationFromData(data *api.LocationData) *Location {
	return &Location{
		ID:          int(data.ID),
		Name:        data.Name,
		Description: data.Description.String,
	}
}

// Group represents a product group.
type Group struct {
	ID          int
	Name        string
	Description string
}

// NewGroupFromData builds a Group from its wire representation.
func NewGroupFromData(data *api.LocationData) *Group {
	return &Group{
		ID:          int(data.ID),
		Name:        data.Name,
		Description: data.Description.String,
	}
}

// Barcode represents a barcode attached to a product.
type Barcode struct {
	Barcode string
	Amount  *float64
}

// Product represents a product together with whatever stock state the source
// payload carried. Fields beyond the identifying ones are only populated by
// the constructors whose payload includes them, or after FetchDetails.
type Product struct {
	ID   int
	Name string

	// From product entity data.
	Description           string
	ProductGroupID        *int
	PictureFileName       string
	MinStockAmount        *float64
	DefaultBestBeforeDays int
	CreatedTimestamp      time.Time

	// From stock summaries.
	AvailableAmount        float64
	AmountAggregated       float64
	AmountOpened           float64
	AmountOpenedAggregated float64
	IsAggregatedAmount     bool
	BestBeforeDate         time.Time

	// From the missing-products surface.
	AmountMissing   *float64
	IsPartlyInStock bool

	// From details.
	Barcodes                    []Barcode
	QuantityUnitStock           *QuantityUnit
	DefaultQuantityUnitPurchase *QuantityUnit
	Location                    *Location
	LastPurchased               *time.Time
	LastUsed                    *time.Time
	LastPrice                   *float64
}

// NewProductFromStock builds a Product from a current-stock summary.
func NewProductFromStock(resp *api.CurrentStockResponse) *Product {
	p := &Product{
		ID:                     int(resp.ProductID),
		AvailableAmount:        float64(resp.Amount),
		AmountAggregated:       float64(resp.AmountAggregated),
		AmountOpened:           float64(resp.AmountOpened),
		AmountOpenedAggregated: float64(resp.AmountOpenedAggregated),
		IsAggregatedAmount:     bool(resp.IsAggregatedAmount),
		BestBeforeDate:         resp.BestBeforeDate.Time,
	}
	p.applyData(&resp.Product)
	return p
}

// NewProductFromDetails builds a Product from a full details payload.
func NewProductFromDetails(resp *api.ProductDetailsResponse) *Product {
	p := &Product{}
	p.applyData(&resp.Product)
	p.applyDetails(resp)
	return p
}

// NewProductFromData builds a Product from the bare product entity.
func NewProductFromData(data *api.ProductData) *Product {
	p := &Product{}
	p.applyData(data)
	return p
}

// NewProductFromMissing builds a Product from a missing-product entry.
func NewProductFromMissing(resp *api.MissingProductResponse) *Product {
	missing := float64(resp.AmountMissing)
	return &Product{
		ID:              int(resp.ID),
		Name:            resp.Name,
		AmountMissing:   &missing,
		IsPartlyInStock: bool(resp.IsPartlyInStock),
	}
}

// NewProductFromStockLog builds a Product stub from a stock log entry. Only
// the product ID is known at this point; FetchDetails fills in the rest.
func NewProductFromStockLog(resp *api.StockLogResponse) *Product {
	return &Product{ID: int(resp.ProductID)}
}

func (p *Product) applyData(data *api.ProductData) {
	p.ID = int(data.ID)
	p.Name = data.Name
	p.Description = data.Description.String
	p.ProductGroupID = data.ProductGroupID.Pointer()
	p.PictureFileName = data.PictureFileName.String
	p.MinStockAmount = data.MinStockAmount.Pointer()
	p.DefaultBestBeforeDays = int(data.DefaultBestBeforeDays)
	p.CreatedTimestamp = data.RowCreatedTimestamp.Time
}

func (p *Product) applyDetails(resp *api.ProductDetailsResponse) {
	p.AvailableAmount = float64(resp.StockAmount)
	p.AmountOpened = float64(resp.StockAmountOpened)
	p.LastPurchased = resp.LastPurchased.Pointer()
	p.LastUsed = resp.LastUsed.Pointer()
	p.LastPrice = resp.LastPrice.Pointer()
	if resp.NextBestBeforeDate.Valid {
		p.BestBeforeDate = resp.NextBestBeforeDate.Time
	}
	p.QuantityUnitStock = NewQuantityUnitFromData(&resp.QuantityUnitStock)
	p.DefaultQuantityUnitPurchase = NewQuantityUnitFromData(&resp.DefaultQuantityUnitPurchase)
	if resp.Location != nil {
		p.Location = NewLocationFromData(resp.Location)
	}
	p.Barcodes = make([]Barcode, 0, len(resp.Barcodes))
	for i := range resp.Barcodes {
		p.Barcodes = append(p.Barcodes, Barcode{
			Barcode: resp.Barcodes[i].Barcode,
			Amount:  resp.Barcodes[i].Amount.Pointer(),
		})
	}
}

// FetchDetails loads the full product details and merges them into the
// receiver. Safe to call more than once; every call refetches.
func (p *Product) FetchDetails(ctx context.Context, client *api.Client) error {
	details, err := client.Product(ctx, p.ID)
	if err != nil {
		return err
	}
	if details == nil {
		return nil
	}
	p.applyData(&details.Product)
	p.applyDetails(details)
	return nil
}
