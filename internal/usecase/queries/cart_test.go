//go:build unit

package queries_test

import (
	"context"
	"testing"

	"royalbike/internal/domain/cart"
	"royalbike/internal/infra"
	"royalbike/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartReader struct {
	carts map[uuid.UUID]map[uuid.UUID]cart.Entry
}

func newFakeCartReader() *fakeCartReader {
	return &fakeCartReader{carts: make(map[uuid.UUID]map[uuid.UUID]cart.Entry)}
}

func (r *fakeCartReader) Load(_ context.Context, userID uuid.UUID) (*cart.Cart, error) {
	entries, ok := r.carts[userID]
	if !ok {
		return cart.New(), nil
	}
	return cart.Restore(entries), nil
}

type fakeProductReadStore struct {
	products map[uuid.UUID]*queries.ProductView
}

func newFakeProductReadStore() *fakeProductReadStore {
	return &fakeProductReadStore{products: make(map[uuid.UUID]*queries.ProductView)}
}

func (s *fakeProductReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ProductView, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (s *fakeProductReadStore) seed(price string) uuid.UUID {
	id := uuid.New()
	s.products[id] = &queries.ProductView{
		ID:       id,
		Name:     "Roadster 500",
		Price:    decimal.RequireFromString(price),
		Stock:    5,
		Kind:     "bicycle",
		Category: queries.CategoryView{ID: uuid.New(), Name: "road"},
	}
	return id
}

func TestCartRaw(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns cached entries verbatim", func(t *testing.T) {
		carts := newFakeCartReader()
		productID := uuid.New()
		carts.carts[userID] = map[uuid.UUID]cart.Entry{
			productID: {Quantity: 3, Category: "stale-category"},
		}
		q := queries.NewCartQueries(carts, newFakeProductReadStore())

		raw, err := q.Raw(ctx, userID)
		require.NoError(t, err)

		require.Len(t, raw, 1)
		entry := raw[productID.String()]
		assert.Equal(t, int32(3), entry.Quantity)
		assert.Equal(t, "stale-category", entry.Category, "snapshot must not be re-resolved")
	})

	t.Run("missing cart yields an empty map", func(t *testing.T) {
		q := queries.NewCartQueries(newFakeCartReader(), newFakeProductReadStore())

		raw, err := q.Raw(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, raw)
	})
}

func TestCartDetailed(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("joins entries with live catalog data and totals them", func(t *testing.T) {
		carts := newFakeCartReader()
		products := newFakeProductReadStore()
		bikeID := products.seed("250.00")
		otherID := products.seed("99.50")
		carts.carts[userID] = map[uuid.UUID]cart.Entry{
			bikeID:  {Quantity: 2, Category: "road"},
			otherID: {Quantity: 1, Category: "road"},
		}
		q := queries.NewCartQueries(carts, products)

		detail, err := q.Detailed(ctx, userID)
		require.NoError(t, err)

		assert.Len(t, detail.Items, 2)
		assert.Equal(t, int32(3), detail.TotalItems)
		assert.Equal(t, "599.50", detail.TotalAmount.StringFixed(2))
	})

	t.Run("entries for deleted products are dropped silently", func(t *testing.T) {
		carts := newFakeCartReader()
		products := newFakeProductReadStore()
		aliveID := products.seed("100.00")
		deletedID := uuid.New()
		carts.carts[userID] = map[uuid.UUID]cart.Entry{
			aliveID:   {Quantity: 1, Category: "road"},
			deletedID: {Quantity: 4, Category: "road"},
		}
		q := queries.NewCartQueries(carts, products)

		detail, err := q.Detailed(ctx, userID)
		require.NoError(t, err)

		require.Len(t, detail.Items, 1)
		assert.Equal(t, aliveID, detail.Items[0].Product.ID)
		assert.Equal(t, int32(1), detail.TotalItems, "dropped entries must not count")
		assert.Equal(t, "100.00", detail.TotalAmount.StringFixed(2))
	})

	t.Run("empty cart gives zero totals", func(t *testing.T) {
		q := queries.NewCartQueries(newFakeCartReader(), newFakeProductReadStore())

		detail, err := q.Detailed(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, detail.Items)
		assert.Zero(t, detail.TotalItems)
		assert.True(t, detail.TotalAmount.IsZero())
	})
}
