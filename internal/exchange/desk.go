package exchange

import (
	"fmt"
	"sync"

	"bourse/internal/common"
)

// BalanceCheck selects how a buyer's balance is screened. The source
// system compares the balance against the UNIT price rather than the
// total cost, which reads like a bug but is long-standing behavior, so
// the policy is explicit and CheckUnitPrice stays the faithful default.
type BalanceCheck int

const (
	CheckUnitPrice BalanceCheck = iota
	CheckTotalCost
)

// Desk validates and executes buy and sell operations against a registry
// and a tape. Both collaborators are injected at construction rather than
// reached through package globals, one desk per process is the expected
// shape but nothing enforces it.
//
// The lookup-validate-mutate sequence of an operation runs as a single
// critical section. Without it, two concurrent buys could both pass the
// availability check and race the quantity update.
type Desk struct {
	mu       sync.Mutex
	registry *Registry
	tape     *Tape
	policy   BalanceCheck
}

func NewDesk(registry *Registry, tape *Tape, policy BalanceCheck) *Desk {
	return &Desk{
		registry: registry,
		tape:     tape,
		policy:   policy,
	}
}

// Buy validates then executes a purchase. Validation order is fixed:
// missing stock, then user, then availability, then balance. A failed buy
// leaves the registry and the tape untouched.
func (d *Desk) Buy(stockName string, quantity uint64, user *common.User) (common.Order, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	stock, ok := d.registry.Lookup(stockName)
	if !ok {
		return common.Order{}, fmt.Errorf("%w: %s", ErrStockNotFound, stockName)
	}
	if !user.Valid() {
		return common.Order{}, ErrInvalidUser
	}
	if !stock.HasAvailableQuantity(quantity) {
		return common.Order{}, ErrOutOfStock
	}
	if !d.hasBalance(user, stock, quantity) {
		return common.Order{}, fmt.Errorf("%w to buy %s", ErrInsufficientBalance, stock.Name())
	}

	return d.tape.Execute(stock, quantity, user, common.Buy)
}

// Sell executes unconditionally once the stock resolves. There is no
// quantity cap, no ownership check and no user validation.
func (d *Desk) Sell(stockName string, quantity uint64, user *common.User) (common.Order, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	stock, ok := d.registry.Lookup(stockName)
	if !ok {
		return common.Order{}, fmt.Errorf("%w: %s", ErrStockNotFound, stockName)
	}

	return d.tape.Execute(stock, quantity, user, common.Sell)
}

func (d *Desk) hasBalance(user *common.User, stock *Stock, quantity uint64) bool {
	cost := stock.Price()
	if d.policy == CheckTotalCost {
		cost = stock.Price() * float64(quantity)
	}
	return user.Balance >= cost
}
