package repository

import (
	"context"
	"time"

	"royalbike/internal/infra"
	"royalbike/internal/infra/db"

	"github.com/google/uuid"
)

// SaleRepository appends to the bicycle_sales ledger. Rows are immutable once
// written; there is no update or delete path.
type SaleRepository struct{}

func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

func (r *SaleRepository) Create(ctx context.Context, dbtx db.DBTX, bicycleID, userID uuid.UUID, quantity int32, saleDate time.Time) (uuid.UUID, error) {
	const query = `
		INSERT INTO bicycle_sales (bicycle_id, user_id, quantity, sale_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	if err := dbtx.QueryRow(ctx, query, bicycleID, userID, quantity, saleDate).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create bicycle sale", err)
	}
	return id, nil
}
