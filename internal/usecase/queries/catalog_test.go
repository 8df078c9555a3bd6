//go:build unit

package queries_test

import (
	"context"
	"testing"

	"royalbike/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaleReadStore struct {
	gotLimit int
	views    []*queries.ProductView
}

func (s *fakeSaleReadStore) TopSellingBicycles(_ context.Context, limit int) ([]*queries.ProductView, error) {
	s.gotLimit = limit
	if len(s.views) > limit {
		return s.views[:limit], nil
	}
	return s.views, nil
}

func TestTopSellingBicycles(t *testing.T) {
	store := newFakeProductReadStore()
	first := store.seed("100.00")
	second := store.seed("200.00")

	sales := &fakeSaleReadStore{
		views: []*queries.ProductView{store.products[first], store.products[second]},
	}
	q := queries.NewCatalogQueries(sales)

	views, err := q.TopSellingBicycles(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, sales.gotLimit, "ranking is capped at the podium size")
	require.Len(t, views, 2)
	assert.Equal(t, first, views[0].ID, "best seller order must be preserved")
}
