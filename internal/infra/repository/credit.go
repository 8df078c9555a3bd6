package repository

import (
	"context"

	"royalbike/internal/domain/credit"
	"royalbike/internal/infra"
	"royalbike/internal/infra/db"
	"royalbike/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CreditRepository struct{}

func NewCreditRepository() *CreditRepository {
	return &CreditRepository{}
}

func (r *CreditRepository) GetOrCreate(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) (decimal.Decimal, bool, error) {
	const selectQuery = `SELECT balance FROM user_credits WHERE user_id = $1`

	var balance pgtype.Numeric
	err := dbtx.QueryRow(ctx, selectQuery, userID).Scan(&balance)
	if err == nil {
		d, convErr := pgconv.DecimalFromNumeric(balance)
		if convErr != nil {
			return decimal.Decimal{}, false, infra.WrapRepoErr("failed to convert credit balance", convErr)
		}
		return d, false, nil
	}
	if !pgconv.IsNoRows(err) {
		return decimal.Decimal{}, false, infra.WrapRepoErr("failed to read credit balance", err)
	}

	const insertQuery = `
		INSERT INTO user_credits (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING balance`

	err = dbtx.QueryRow(ctx, insertQuery, userID, pgconv.DecimalToNumeric(credit.DefaultBalance)).Scan(&balance)
	if err == nil {
		d, convErr := pgconv.DecimalFromNumeric(balance)
		if convErr != nil {
			return decimal.Decimal{}, false, infra.WrapRepoErr("failed to convert credit balance", convErr)
		}
		return d, true, nil
	}
	if !pgconv.IsNoRows(err) {
		return decimal.Decimal{}, false, infra.WrapRepoErr("failed to create credit record", err)
	}

	// Lost the insert race; the row exists now.
	if err := dbtx.QueryRow(ctx, selectQuery, userID).Scan(&balance); err != nil {
		return decimal.Decimal{}, false, infra.WrapRepoErr("failed to re-read credit balance", err)
	}
	d, convErr := pgconv.DecimalFromNumeric(balance)
	if convErr != nil {
		return decimal.Decimal{}, false, infra.WrapRepoErr("failed to convert credit balance", convErr)
	}
	return d, false, nil
}

func (r *CreditRepository) Debit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		UPDATE user_credits
		SET balance = balance - $2, updated_at = now()
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance`

	var balance pgtype.Numeric
	err := dbtx.QueryRow(ctx, query, userID, pgconv.DecimalToNumeric(amount)).Scan(&balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return decimal.Decimal{}, infra.WrapRepoErr("credit balance below debit amount", err, infra.KindConflict)
		}
		return decimal.Decimal{}, infra.WrapRepoErr("failed to debit credit", err)
	}

	d, convErr := pgconv.DecimalFromNumeric(balance)
	if convErr != nil {
		return decimal.Decimal{}, infra.WrapRepoErr("failed to convert credit balance", convErr)
	}
	return d, nil
}
