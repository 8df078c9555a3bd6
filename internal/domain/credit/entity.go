package credit

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// DefaultBalance is granted to every user the first time their credit is
// touched.
var DefaultBalance = decimal.RequireFromString("1000.00")

type Credit struct {
	balance decimal.Decimal
}

func New(balance decimal.Decimal) *Credit {
	return &Credit{balance: balance}
}

func (c *Credit) Balance() decimal.Decimal {
	return c.balance
}

func (c *Credit) CanAfford(amount decimal.Decimal) bool {
	return !amount.IsNegative() && c.balance.GreaterThanOrEqual(amount)
}

func (c *Credit) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if c.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	c.balance = c.balance.Sub(amount)
	return nil
}
