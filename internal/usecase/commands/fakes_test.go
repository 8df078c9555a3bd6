//go:build unit

package commands_test

import (
	"context"
	"time"

	"royalbike/internal/domain/cart"
	"royalbike/internal/domain/credit"
	"royalbike/internal/infra"
	"royalbike/internal/infra/db"
	"royalbike/internal/usecase/commands"
	"royalbike/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory stand-ins for the persistence ports. The unit of work clones
// state before running the transactional closure and publishes the clone
// only on success, so tests can assert that failed checkouts leave nothing
// behind.

type productRow struct {
	Name      string
	Price     decimal.Decimal
	Stock     int32
	Kind      string
	Category  string
	BicycleID uuid.UUID // uuid.Nil when no bicycle row exists
}

type saleRow struct {
	ID        uuid.UUID
	BicycleID uuid.UUID
	UserID    uuid.UUID
	Quantity  int32
	SaleDate  time.Time
}

type storeState struct {
	products map[uuid.UUID]productRow
	credits  map[uuid.UUID]decimal.Decimal
	sales    []saleRow
}

func newStoreState() *storeState {
	return &storeState{
		products: make(map[uuid.UUID]productRow),
		credits:  make(map[uuid.UUID]decimal.Decimal),
	}
}

func (s *storeState) clone() *storeState {
	c := newStoreState()
	for id, p := range s.products {
		c.products[id] = p
	}
	for id, b := range s.credits {
		c.credits[id] = b
	}
	c.sales = append(c.sales, s.sales...)
	return c
}

type fakeUoW struct {
	state *storeState
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: newStoreState()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	staged := u.state.clone()
	if err := fn(ctx, &fakeTx{state: staged}); err != nil {
		return err
	}
	u.state = staged
	return nil
}

type fakeTx struct {
	state *storeState
}

func (t *fakeTx) DB() db.DBTX                        { return nil }
func (t *fakeTx) Products() shared.ProductRepository { return &fakeProductRepo{state: t.state} }
func (t *fakeTx) Sales() shared.SaleRepository       { return &fakeSaleRepo{state: t.state} }
func (t *fakeTx) Credits() shared.CreditRepository   { return &fakeCreditRepo{state: t.state} }

type fakeProductRepo struct {
	state *storeState
}

func (r *fakeProductRepo) FindForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.LockedProduct, error) {
	p, ok := r.state.products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return &shared.LockedProduct{
		ID:    id,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
		Kind:  p.Kind,
	}, nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, _ db.DBTX, id uuid.UUID, quantity int32) error {
	p, ok := r.state.products[id]
	if !ok || p.Stock < quantity {
		return infra.WrapRepoErr("stock guard failed", nil, infra.KindConflict)
	}
	p.Stock -= quantity
	r.state.products[id] = p
	return nil
}

func (r *fakeProductRepo) BicycleIDForProduct(_ context.Context, _ db.DBTX, productID uuid.UUID) (uuid.UUID, error) {
	p, ok := r.state.products[productID]
	if !ok || p.BicycleID == uuid.Nil {
		return uuid.Nil, infra.WrapRepoErr("bicycle not found", nil, infra.KindNotFound)
	}
	return p.BicycleID, nil
}

type fakeSaleRepo struct {
	state *storeState
}

func (r *fakeSaleRepo) Create(_ context.Context, _ db.DBTX, bicycleID, userID uuid.UUID, quantity int32, saleDate time.Time) (uuid.UUID, error) {
	id := uuid.New()
	r.state.sales = append(r.state.sales, saleRow{
		ID:        id,
		BicycleID: bicycleID,
		UserID:    userID,
		Quantity:  quantity,
		SaleDate:  saleDate,
	})
	return id, nil
}

type fakeCreditRepo struct {
	state *storeState
}

func (r *fakeCreditRepo) GetOrCreate(_ context.Context, _ db.DBTX, userID uuid.UUID) (decimal.Decimal, bool, error) {
	if balance, ok := r.state.credits[userID]; ok {
		return balance, false, nil
	}
	r.state.credits[userID] = credit.DefaultBalance
	return credit.DefaultBalance, true, nil
}

func (r *fakeCreditRepo) Debit(_ context.Context, _ db.DBTX, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, ok := r.state.credits[userID]
	if !ok || balance.LessThan(amount) {
		return decimal.Decimal{}, infra.WrapRepoErr("balance guard failed", nil, infra.KindConflict)
	}
	balance = balance.Sub(amount)
	r.state.credits[userID] = balance
	return balance, nil
}

type fakeCartStore struct {
	carts      map[uuid.UUID]map[uuid.UUID]cart.Entry
	saveErr    error
	clearErr   error
	clearCalls int
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[uuid.UUID]map[uuid.UUID]cart.Entry)}
}

func (s *fakeCartStore) Load(_ context.Context, userID uuid.UUID) (*cart.Cart, error) {
	entries, ok := s.carts[userID]
	if !ok {
		return cart.New(), nil
	}
	copied := make(map[uuid.UUID]cart.Entry, len(entries))
	for id, e := range entries {
		copied[id] = e
	}
	return cart.Restore(copied), nil
}

func (s *fakeCartStore) Save(_ context.Context, userID uuid.UUID, c *cart.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.carts[userID] = c.Entries()
	return nil
}

func (s *fakeCartStore) Clear(_ context.Context, userID uuid.UUID) error {
	s.clearCalls++
	if s.clearErr != nil {
		return s.clearErr
	}
	delete(s.carts, userID)
	return nil
}

type fakeProductReader struct {
	snapshots map[uuid.UUID]*commands.ProductSnapshot
}

func newFakeProductReader() *fakeProductReader {
	return &fakeProductReader{snapshots: make(map[uuid.UUID]*commands.ProductSnapshot)}
}

func (r *fakeProductReader) SnapshotByID(_ context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	snap, ok := r.snapshots[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return snap, nil
}
