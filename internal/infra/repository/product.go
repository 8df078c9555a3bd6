package repository

import (
	"context"

	"royalbike/internal/infra"
	"royalbike/internal/infra/db"
	"royalbike/internal/pkg/pgconv"
	"royalbike/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.LockedProduct, error) {
	const query = `
		SELECT id, name, price, stock, kind
		FROM products
		WHERE id = $1
		FOR UPDATE`

	var (
		row   shared.LockedProduct
		price pgtype.Numeric
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(&row.ID, &row.Name, &price, &row.Stock, &row.Kind)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock product row", err)
	}

	row.Price, err = pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product price", err)
	}

	return &row, nil
}

func (r *ProductRepository) DecrementStock(ctx context.Context, dbtx db.DBTX, id uuid.UUID, quantity int32) error {
	const query = `
		UPDATE products
		SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`

	tag, err := dbtx.Exec(ctx, query, id, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	// The caller checks stock under the row lock first, so a guard miss here
	// indicates the row changed underneath us.
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock guard rejected decrement", nil, infra.KindConflict)
	}
	return nil
}

func (r *ProductRepository) BicycleIDForProduct(ctx context.Context, dbtx db.DBTX, productID uuid.UUID) (uuid.UUID, error) {
	const query = `SELECT product_id FROM bicycles WHERE product_id = $1`

	var bicycleID uuid.UUID
	if err := dbtx.QueryRow(ctx, query, productID).Scan(&bicycleID); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("bicycle spec not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find bicycle spec", err)
	}
	return bicycleID, nil
}
