package shared

import (
	"context"
	"time"

	"royalbike/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitOfWork runs write-side work inside a single transaction. Checkout's
// all-or-nothing guarantee lives entirely behind Within: staged stock
// decrements, sale inserts, and the credit debit commit together or not at
// all.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	DB() db.DBTX
	Products() ProductRepository
	Sales() SaleRepository
	Credits() CreditRepository
}

// LockedProduct is the row image held under FOR UPDATE while a checkout
// validates and applies one item. Holding the row lock serializes concurrent
// stock read-modify-write per product.
type LockedProduct struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
	Stock int32
	Kind  string
}

type ProductRepository interface {
	FindForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (*LockedProduct, error)
	DecrementStock(ctx context.Context, db db.DBTX, id uuid.UUID, quantity int32) error
	// BicycleIDForProduct resolves the 1:1 bicycle row; a bicycle-kind
	// product without one is a data-integrity violation surfaced as NotFound.
	BicycleIDForProduct(ctx context.Context, db db.DBTX, productID uuid.UUID) (uuid.UUID, error)
}

type SaleRepository interface {
	Create(ctx context.Context, db db.DBTX, bicycleID, userID uuid.UUID, quantity int32, saleDate time.Time) (uuid.UUID, error)
}

type CreditRepository interface {
	// GetOrCreate lazily provisions the default balance on first access.
	GetOrCreate(ctx context.Context, db db.DBTX, userID uuid.UUID) (balance decimal.Decimal, created bool, err error)
	// Debit subtracts amount guarded by balance >= amount and returns the new
	// balance; a guard miss is reported as a CONFLICT repository error.
	Debit(ctx context.Context, db db.DBTX, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}
