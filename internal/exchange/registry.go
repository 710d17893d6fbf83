package exchange

import (
	"fmt"
	"sync"

	"github.com/tidwall/btree"
)

// Registry maps stock names to their single live Stock record. Feed
// workers may hit it concurrently, so every access goes through the lock.
type Registry struct {
	mu     sync.RWMutex
	stocks *btree.BTreeG[*Stock]
}

func NewRegistry() *Registry {
	// Sorted by name so List walks alphabetically.
	return &Registry{
		stocks: btree.NewBTreeG(func(a, b *Stock) bool {
			return a.name < b.name
		}),
	}
}

// Register inserts a stock under its name. The first registration of a
// name wins; later ones fail and leave the original untouched.
func (r *Registry) Register(stock *Stock) error {
	if stock == nil {
		return ErrWrongObjectType
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Comparator only accounts for names, so a probe with just the name
	// set is enough for the search.
	if _, ok := r.stocks.Get(&Stock{name: stock.name}); ok {
		return ErrDuplicateStock
	}
	r.stocks.Set(stock)
	return nil
}

// Lookup returns the stock registered under name. A miss is not an error
// here, callers decide what an absent stock means.
func (r *Registry) Lookup(name string) (*Stock, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stocks.Get(&Stock{name: name})
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stocks.Len()
}

// List returns the registered stocks in name order.
func (r *Registry) List() []*Stock {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stocks.Items()
}

func (r *Registry) String() string {
	return fmt.Sprintf("Total stocks available %d", r.Len())
}
