package queries

import (
	"context"
	"errors"

	"royalbike/internal/domain/cart"
	"royalbike/internal/infra"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartEntryView mirrors the stored cache entry verbatim, category snapshot
// included. The snapshot may be stale relative to the catalog; the detailed
// view re-resolves instead of trusting it.
type CartEntryView struct {
	Quantity int32  `json:"quantity"`
	Category string `json:"category"`
}

type CartItemView struct {
	Product  ProductView     `json:"product"`
	Quantity int32           `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartDetailView struct {
	Items       []CartItemView  `json:"items"`
	TotalItems  int32           `json:"total_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type CartReader interface {
	Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
}

type CartQueries interface {
	Raw(ctx context.Context, userID uuid.UUID) (map[string]CartEntryView, error)
	Detailed(ctx context.Context, userID uuid.UUID) (*CartDetailView, error)
}

type cartQueriesImpl struct {
	carts    CartReader
	products ProductReadStore
}

func NewCartQueries(carts CartReader, products ProductReadStore) CartQueries {
	return &cartQueriesImpl{carts: carts, products: products}
}

func (q *cartQueriesImpl) Raw(ctx context.Context, userID uuid.UUID) (map[string]CartEntryView, error) {
	c, err := q.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make(map[string]CartEntryView, c.Len())
	for id, e := range c.Entries() {
		out[id.String()] = CartEntryView{Quantity: e.Quantity, Category: e.Category}
	}
	return out, nil
}

// Detailed re-resolves every entry against the live catalog. Entries whose
// product has been deleted are dropped silently (cart drift is expected)
// and totals cover surviving items only.
func (q *cartQueriesImpl) Detailed(ctx context.Context, userID uuid.UUID) (*CartDetailView, error) {
	c, err := q.carts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartDetailView{
		Items:       make([]CartItemView, 0, c.Len()),
		TotalAmount: decimal.Zero,
	}

	for id, entry := range c.Entries() {
		product, err := q.products.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) || infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}

		subtotal := product.Price.Mul(decimal.NewFromInt32(entry.Quantity))
		view.Items = append(view.Items, CartItemView{
			Product:  *product,
			Quantity: entry.Quantity,
			Subtotal: subtotal,
		})
		view.TotalItems += entry.Quantity
		view.TotalAmount = view.TotalAmount.Add(subtotal)
	}

	return view, nil
}
