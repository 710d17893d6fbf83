package feed

import (
	"context"

	"bourse/internal/common"
	"bourse/internal/exchange"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

const (
	REQUEST_CHAN_SIZE = 100
	defaultNWorkers   = 4
)

// Request is a single instruction for the desk.
type Request struct {
	Side     common.Side
	Stock    string
	Quantity uint64
	User     *common.User
}

// Pool fans a stream of order requests out to a fixed set of workers, all
// executing against the same desk. Rejected orders are logged and dropped,
// they never kill a worker.
type Pool struct {
	n        int
	desk     *exchange.Desk
	requests chan Request
	t        *tomb.Tomb
}

func NewPool(n int, desk *exchange.Desk) *Pool {
	if n < 1 {
		n = defaultNWorkers
	}
	return &Pool{
		n:        n,
		desk:     desk,
		requests: make(chan Request, REQUEST_CHAN_SIZE),
	}
}

// Run starts the workers. They exit once Close is called and the queue
// drains, or when the context is cancelled.
func (p *Pool) Run(ctx context.Context) {
	t, _ := tomb.WithContext(ctx)
	p.t = t
	for i := 0; i < p.n; i++ {
		id := i
		t.Go(func() error {
			return p.worker(t, id)
		})
	}
	log.Info().Int("workers", p.n).Msg("feed running")
}

// Submit enqueues a request. Blocks while the queue is full.
func (p *Pool) Submit(req Request) {
	p.requests <- req
}

// Close stops intake. Workers finish whatever was already submitted.
func (p *Pool) Close() {
	close(p.requests)
}

// Wait blocks until every worker has exited.
func (p *Pool) Wait() error {
	return p.t.Wait()
}

// Workers wait on queued requests and action them against the desk.
func (p *Pool) worker(t *tomb.Tomb, id int) error {
	for {
		select {
		case <-t.Dying():
			return nil
		case req, ok := <-p.requests:
			if !ok {
				return nil
			}
			p.execute(id, req)
		}
	}
}

func (p *Pool) execute(id int, req Request) {
	var (
		order common.Order
		err   error
	)
	switch req.Side {
	case common.Buy:
		order, err = p.desk.Buy(req.Stock, req.Quantity, req.User)
	case common.Sell:
		order, err = p.desk.Sell(req.Stock, req.Quantity, req.User)
	default:
		err = exchange.ErrWrongStockType
	}
	if err != nil {
		log.Warn().
			Err(err).
			Int("worker", id).
			Str("stock", req.Stock).
			Msg("order rejected")
		return
	}

	log.Info().
		Int("worker", id).
		Str("order", order.ID).
		Str("stock", order.Stock).
		Uint64("quantity", order.Quantity).
		Msg("order executed")
}
