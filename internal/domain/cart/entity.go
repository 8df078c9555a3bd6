package cart

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrItemNotFound    = errors.New("item not in cart")
)

// Entry is the cached cart line: a quantity plus a category snapshot taken
// when the item was added. The snapshot is display data; it may drift from
// the catalog and is never used for pricing.
type Entry struct {
	Quantity int32  `json:"quantity"`
	Category string `json:"category"`
}

type Cart struct {
	entries map[uuid.UUID]Entry
}

func New() *Cart {
	return &Cart{entries: make(map[uuid.UUID]Entry)}
}

// Restore rebuilds a cart from previously stored entries.
func Restore(entries map[uuid.UUID]Entry) *Cart {
	if entries == nil {
		entries = make(map[uuid.UUID]Entry)
	}
	return &Cart{entries: entries}
}

// Put sets the entry for a product, replacing any existing one. Quantities
// never accumulate: adding a product twice keeps the latest quantity.
func (c *Cart) Put(productID uuid.UUID, quantity int32, category string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c.entries[productID] = Entry{Quantity: quantity, Category: category}
	return nil
}

func (c *Cart) Remove(productID uuid.UUID) error {
	if _, ok := c.entries[productID]; !ok {
		return ErrItemNotFound
	}
	delete(c.entries, productID)
	return nil
}

func (c *Cart) Get(productID uuid.UUID) (Entry, bool) {
	e, ok := c.entries[productID]
	return e, ok
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Entries returns a copy; mutating it does not affect the cart.
func (c *Cart) Entries() map[uuid.UUID]Entry {
	out := make(map[uuid.UUID]Entry, len(c.entries))
	for id, e := range c.entries {
		out[id] = e
	}
	return out
}
