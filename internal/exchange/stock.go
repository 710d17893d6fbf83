package exchange

import (
	"bourse/internal/common"
)

// Stock is a mutable inventory record. The name is fixed at construction
// and quantity moves with executed orders. Zero quantity is a legal,
// sold-out state.
//
// NOTE: might want to compare price with `Float` from `math/big`: more
// precise but slower.
type Stock struct {
	name     string
	quantity uint64
	price    float64
}

// NewStock builds an unregistered stock. Registration is a separate,
// explicit step so that constructing a value has no side effects.
func NewStock(name string, quantity uint64, price float64) (*Stock, error) {
	if name == "" || price <= 0 {
		return nil, ErrWrongObjectType
	}
	return &Stock{
		name:     name,
		quantity: quantity,
		price:    price,
	}, nil
}

func (s *Stock) Name() string { return s.name }

func (s *Stock) Quantity() uint64 { return s.quantity }

func (s *Stock) Price() float64 { return s.price }

// HasAvailableQuantity reports whether an order for q can be covered by
// the current inventory.
func (s *Stock) HasAvailableQuantity(q uint64) bool {
	return q <= s.quantity
}

// Apply moves the inventory for one executed order: a buy takes quantity
// out, a sell puts it back. A buy that would take the quantity below zero
// fails without mutating, even if the caller already screened it.
func (s *Stock) Apply(side common.Side, quantity uint64) error {
	switch side {
	case common.Buy:
		if quantity > s.quantity {
			return ErrWrongStockQuantity
		}
		s.quantity -= quantity
	case common.Sell:
		s.quantity += quantity
	default:
		return ErrWrongStockType
	}
	return nil
}

func (s *Stock) String() string {
	return s.name
}
