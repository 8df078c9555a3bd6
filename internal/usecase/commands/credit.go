package commands

import (
	"context"

	"royalbike/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreditResult struct {
	Balance decimal.Decimal
	// IsNewProfile reports whether this call provisioned the default balance.
	IsNewProfile bool
}

type CreditCommands interface {
	GetOrInit(ctx context.Context, userID uuid.UUID) (*CreditResult, error)
}

type creditCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCreditCommands(uow shared.UnitOfWork) CreditCommands {
	return &creditCommandsImpl{uow: uow}
}

func (c *creditCommandsImpl) GetOrInit(ctx context.Context, userID uuid.UUID) (*CreditResult, error) {
	var result CreditResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		balance, created, err := tx.Credits().GetOrCreate(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}
		result.Balance = balance
		result.IsNewProfile = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
