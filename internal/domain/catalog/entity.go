package catalog

import (
	"errors"
)

var ErrUnknownKind = errors.New("unknown product kind")

// Kind is the closed set of product types the store sells. Checkout
// dispatches on it, so an unknown kind is rejected rather than ignored.
// Product shape invariants (non-negative price and stock, bicycles carrying
// their 1:1 spec row) are enforced by the schema; this package owns only the
// kind vocabulary.
type Kind string

const (
	KindBicycle   Kind = "bicycle"
	KindAccessory Kind = "accessory"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBicycle, KindAccessory:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrUnknownKind
	}
	return k, nil
}
