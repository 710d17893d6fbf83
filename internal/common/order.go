package common

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order is an immutable record of a single executed buy or sell. Amount is
// a snapshot of price x quantity taken at execution time and is never
// recomputed afterwards.
type Order struct {
	ID        string    // Order tracking id
	Stock     string    // Name of the stock transacted
	Owner     string    // Username of the ordering user, empty if none
	Side      Side      // Order side
	Quantity  uint64    // Quantity transacted
	Amount    float64   // Price at order time x quantity
	Timestamp time.Time // Time of execution
}

// NewOrderID builds a traceability id of the form
// stock_<side>_<uuid prefix><unix seconds>. It is never used as a lookup
// key anywhere.
func NewOrderID(side Side) string {
	return fmt.Sprintf("stock_%s_%s%d", side, uuid.New().String()[:4], time.Now().Unix())
}

func (o Order) String() string {
	return fmt.Sprintf(
		`ID:        %s
Stock:     %s
Owner:     %s
Side:      %v
Quantity:  %d
Amount:    %f
Timestamp: %v`,
		o.ID,
		o.Stock,
		o.Owner,
		o.Side,
		o.Quantity,
		o.Amount,
		o.Timestamp.Format(time.RFC3339), // Formatted for readability
	)
}
