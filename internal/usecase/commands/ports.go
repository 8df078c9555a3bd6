package commands

import (
	"context"

	"royalbike/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS
// separation).
type ProductSnapshot struct {
	ID           uuid.UUID
	Name         string
	Price        decimal.Decimal
	Stock        int32
	Kind         string
	CategoryName string
}

// ProductReader is the catalog lookup cart mutations re-validate against.
type ProductReader interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
}

// CartStore is the cache-backed cart persistence port. Load is fail-open:
// implementations return an empty cart rather than an error for missing or
// corrupted values.
type CartStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
