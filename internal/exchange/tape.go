package exchange

import (
	"sync"
	"time"

	"bourse/internal/common"

	"github.com/rs/zerolog"
)

// Tape is the append-only log of executed orders.
type Tape struct {
	mu     sync.Mutex
	orders []common.Order
	logger zerolog.Logger
}

func NewTape(logger zerolog.Logger) *Tape {
	return &Tape{logger: logger}
}

// Execute applies a single order against a stock, narrates the quantity
// move, and appends the record to the tape and to the user's history.
// The snapshot-mutate-append sequence runs under one lock so that two
// concurrent orders cannot interleave between the quantity check inside
// Apply and the append.
func (t *Tape) Execute(stock *Stock, quantity uint64, user *common.User, side common.Side) (common.Order, error) {
	if !side.Valid() {
		return common.Order{}, ErrWrongStockType
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.narrate("Before", side, quantity, stock)
	if err := stock.Apply(side, quantity); err != nil {
		return common.Order{}, err
	}
	t.narrate("After", side, quantity, stock)

	order := common.Order{
		ID:        common.NewOrderID(side),
		Stock:     stock.Name(),
		Side:      side,
		Quantity:  quantity,
		Amount:    stock.Price() * float64(quantity),
		Timestamp: time.Now(),
	}
	// Sell takes no user at all, so the owner link is best effort.
	if user != nil {
		order.Owner = user.Username
		user.History = append(user.History, order)
	}
	t.orders = append(t.orders, order)

	return order, nil
}

// Orders returns a copy of the executed orders, oldest first.
func (t *Tape) Orders() []common.Order {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]common.Order(nil), t.orders...)
}

func (t *Tape) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.orders)
}

// narrate emits the human-readable quantity move, e.g.
// "Before buying 1 stock1 stock, 10 stocks are remaining."
func (t *Tape) narrate(event string, side common.Side, quantity uint64, stock *Stock) {
	t.logger.Info().Msgf("%s %s %d %s %s, %d %s are remaining.",
		event, side.Verb(), quantity, stock.Name(), stockNoun(quantity),
		stock.Quantity(), stockNoun(stock.Quantity()))
}

// stockNoun is singular only for a count of exactly one. Zero is plural.
func stockNoun(count uint64) string {
	if count == 1 {
		return "stock"
	}
	return "stocks"
}
