package commands

import (
	"context"

	"royalbike/internal/infra"
	"royalbike/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errs.New("product not found")
	ErrInvalidQuantity  = errs.New("quantity must be greater than zero")
	ErrCartItemNotFound = errs.New("product not in cart")
	ErrCartEmpty        = errs.New("cart is empty")
)

type CartCommands interface {
	// AddItem puts {quantity, category snapshot} for the product, replacing
	// any existing entry. Quantities do not accumulate across calls.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error
	// UpdateQuantity is AddItem with a dedicated non-positive-quantity error,
	// matching the validated update path of the API.
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int32) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	// Clear is idempotent; clearing an absent cart succeeds.
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartCommandsImpl struct {
	carts    CartStore
	products ProductReader
}

func NewCartCommands(carts CartStore, products ProductReader) CartCommands {
	return &cartCommandsImpl{carts: carts, products: products}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return c.putItem(ctx, userID, productID, quantity)
}

func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return c.putItem(ctx, userID, productID, quantity)
}

func (c *cartCommandsImpl) putItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	product, err := c.products.SnapshotByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Wrap(err, "failed to resolve product for cart")
	}

	crt, err := c.carts.Load(ctx, userID)
	if err != nil {
		return errs.Wrap(err, "failed to load cart")
	}

	if err := crt.Put(productID, quantity, product.CategoryName); err != nil {
		return ErrInvalidQuantity
	}

	return c.carts.Save(ctx, userID, crt)
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	crt, err := c.carts.Load(ctx, userID)
	if err != nil {
		return errs.Wrap(err, "failed to load cart")
	}
	if crt.IsEmpty() {
		return ErrCartEmpty
	}
	if err := crt.Remove(productID); err != nil {
		return ErrCartItemNotFound
	}
	return c.carts.Save(ctx, userID, crt)
}

func (c *cartCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return c.carts.Clear(ctx, userID)
}
