package commands

import (
	"context"
	"log/slog"

	"royalbike/internal/domain/catalog"
	"royalbike/internal/domain/credit"
	"royalbike/internal/infra"
	"royalbike/internal/pkg/clock"
	"royalbike/internal/pkg/errs"
	"royalbike/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart              = errs.New("checkout items list is empty")
	ErrInvalidTotal           = errs.New("total is missing or not a valid amount")
	ErrInsufficientCredit     = errs.New("insufficient credit")
	ErrInsufficientStock      = errs.New("insufficient stock")
	ErrBicycleSpecMissing     = errs.New("bicycle record missing for bicycle product")
	ErrUnsupportedProductType = errs.New("unsupported product type")
)

type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int32
}

type CheckoutParams struct {
	Items []CheckoutItem
	// ClaimedTotal is the client-supplied amount that will be debited. It is
	// trusted as given, not recomputed server-side; a divergence from catalog
	// prices is logged, not rejected.
	ClaimedTotal string
}

type CheckoutResult struct {
	SalesCreated    int
	TotalCharged    decimal.Decimal
	RemainingCredit decimal.Decimal
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, userID uuid.UUID, params CheckoutParams) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow   shared.UnitOfWork
	carts CartStore
	clock clock.Clock
}

func NewCheckoutCommands(uow shared.UnitOfWork, carts CartStore, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{uow: uow, carts: carts, clock: clk}
}

// Checkout converts the requested items into persisted sales, decrements
// stock, and debits credit, all inside one transaction. Any per-item
// rejection aborts the whole unit of work with no partial decrements or
// sales surviving. Cart eviction is a best-effort side effect after commit
// and never gates the financial state.
func (c *checkoutCommandsImpl) Checkout(ctx context.Context, userID uuid.UUID, params CheckoutParams) (*CheckoutResult, error) {
	total, err := c.validateShape(params)
	if err != nil {
		return nil, err
	}

	// Affordability pre-check: fail fast before any locks are taken. The
	// debit re-checks under the row lock, so this is not the guard.
	if err := c.precheckCredit(ctx, userID, total); err != nil {
		return nil, err
	}

	result := &CheckoutResult{TotalCharged: total}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		serverTotal := decimal.Zero

		for _, item := range params.Items {
			if item.Quantity < 1 {
				return ErrInvalidQuantity
			}

			product, err := tx.Products().FindForUpdate(ctx, tx.DB(), item.ProductID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(errs.Newf("product %s not found", item.ProductID), ErrProductNotFound)
				}
				return err
			}

			if product.Stock < item.Quantity {
				return errs.Mark(
					errs.Newf("insufficient stock for %s: available %d, requested %d",
						product.Name, product.Stock, item.Quantity),
					ErrInsufficientStock,
				)
			}

			kind, kindErr := catalog.ParseKind(product.Kind)
			if kindErr != nil {
				return errs.Mark(
					errs.Newf("unsupported product type %q for %s", product.Kind, product.Name),
					ErrUnsupportedProductType,
				)
			}

			switch kind {
			case catalog.KindBicycle:
				bicycleID, err := tx.Products().BicycleIDForProduct(ctx, tx.DB(), product.ID)
				if err != nil {
					if infra.IsKind(err, infra.KindNotFound) {
						return errs.Mark(
							errs.Newf("bicycle record missing for product %s", product.Name),
							ErrBicycleSpecMissing,
						)
					}
					return err
				}
				if _, err := tx.Sales().Create(ctx, tx.DB(), bicycleID, userID, item.Quantity, c.clock.Now()); err != nil {
					return err
				}
				result.SalesCreated++
			case catalog.KindAccessory:
				// Accessory sales leave no ledger record; only stock moves.
			}

			if err := tx.Products().DecrementStock(ctx, tx.DB(), product.ID, item.Quantity); err != nil {
				return err
			}

			serverTotal = serverTotal.Add(product.Price.Mul(decimal.NewFromInt32(item.Quantity)))
		}

		if !serverTotal.Equal(total) {
			slog.Warn("claimed checkout total diverges from catalog prices",
				"user_id", userID.String(),
				"claimed", total.StringFixed(2),
				"computed", serverTotal.StringFixed(2))
		}

		balance, _, err := tx.Credits().GetOrCreate(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}

		account := credit.New(balance)
		if err := account.Debit(total); err != nil {
			return errs.Mark(
				errs.Newf("insufficient credit: balance %s, total %s",
					balance.StringFixed(2), total.StringFixed(2)),
				ErrInsufficientCredit,
			)
		}

		// The guarded UPDATE re-checks the balance under write lock, so a
		// concurrent debit between the read and here still cannot overdraw.
		remaining, err := tx.Credits().Debit(ctx, tx.DB(), userID, total)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrInsufficientCredit
			}
			return err
		}
		result.RemainingCredit = remaining

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := c.carts.Clear(ctx, userID); err != nil {
		slog.Warn("failed to evict cart after checkout",
			"user_id", userID.String(), "error", err.Error())
	}

	return result, nil
}

func (c *checkoutCommandsImpl) validateShape(params CheckoutParams) (decimal.Decimal, error) {
	if len(params.Items) == 0 {
		return decimal.Decimal{}, ErrEmptyCart
	}
	total, err := decimal.NewFromString(params.ClaimedTotal)
	if err != nil || total.IsNegative() {
		return decimal.Decimal{}, ErrInvalidTotal
	}
	return total, nil
}

func (c *checkoutCommandsImpl) precheckCredit(ctx context.Context, userID uuid.UUID, total decimal.Decimal) error {
	var balance decimal.Decimal
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, _, err := tx.Credits().GetOrCreate(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}
		balance = b
		return nil
	})
	if err != nil {
		return err
	}
	if !credit.New(balance).CanAfford(total) {
		return errs.Mark(
			errs.Newf("insufficient credit: balance %s, total %s",
				balance.StringFixed(2), total.StringFixed(2)),
			ErrInsufficientCredit,
		)
	}
	return nil
}
