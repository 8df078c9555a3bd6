package queries

import (
	"context"

	"royalbike/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errs.New("product not found")

// Read models (DTO for read side)
type CategoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BicycleSpecView struct {
	BikeType  string          `json:"bike_type"`
	WheelSize int32           `json:"wheel_size"`
	Color     string          `json:"color"`
	Material  string          `json:"material"`
	Weight    decimal.Decimal `json:"weight"`
}

type ProductView struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	Stock       int32            `json:"stock"`
	Kind        string           `json:"kind"`
	Category    CategoryView     `json:"category"`
	Bicycle     *BicycleSpecView `json:"bicycle,omitempty"`
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type SaleReadStore interface {
	// TopSellingBicycles ranks bicycles by total quantity sold across the
	// ledger and returns their product views, best sellers first.
	TopSellingBicycles(ctx context.Context, limit int) ([]*ProductView, error)
}

type CatalogQueries interface {
	TopSellingBicycles(ctx context.Context) ([]*ProductView, error)
}

const topSellingLimit = 3

type catalogQueriesImpl struct {
	sales SaleReadStore
}

func NewCatalogQueries(sales SaleReadStore) CatalogQueries {
	return &catalogQueriesImpl{sales: sales}
}

func (q *catalogQueriesImpl) TopSellingBicycles(ctx context.Context) ([]*ProductView, error) {
	return q.sales.TopSellingBicycles(ctx, topSellingLimit)
}
