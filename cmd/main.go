package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bourse/internal/common"
	"bourse/internal/exchange"
	"bourse/internal/feed"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	// Setup the registry, tape and desk.
	registry := exchange.NewRegistry()
	tape := exchange.NewTape(log.Logger)
	desk := exchange.NewDesk(registry, tape, exchange.CheckUnitPrice)

	for _, def := range []struct {
		name     string
		quantity uint64
		price    float64
	}{
		{"stock1", 10, 999},
		{"stock2", 1, 674},
	} {
		stock, err := exchange.NewStock(def.name, def.quantity, def.price)
		if err != nil {
			log.Fatal().Err(err).Str("stock", def.name).Msg("bad stock definition")
		}
		if err := registry.Register(stock); err != nil {
			log.Fatal().Err(err).Str("stock", def.name).Msg("unable to register stock")
		}
	}
	log.Info().Msg(registry.String())

	u1 := common.NewUser("u1", 10000)

	// Feed a small batch of orders through the worker pool.
	pool := feed.NewPool(2, desk)
	pool.Run(ctx)
	for _, req := range []feed.Request{
		{Side: common.Buy, Stock: "stock1", Quantity: 1, User: u1},
		{Side: common.Sell, Stock: "stock1", Quantity: 2, User: u1},
		{Side: common.Buy, Stock: "stock2", Quantity: 1, User: u1},
	} {
		pool.Submit(req)
	}
	pool.Close()
	if err := pool.Wait(); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("feed exited abnormally")
	}

	for _, order := range tape.Orders() {
		log.Info().
			Str("order", order.ID).
			Str("stock", order.Stock).
			Float64("amount", order.Amount).
			Msg("on tape")
	}
}
