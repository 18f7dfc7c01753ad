package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderbook_orders_placed_total",
		Help: "Orders accepted for matching.",
	})

	TradesExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderbook_trades_executed_total",
		Help: "Trades produced by matching.",
	})

	QuantityFilled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderbook_quantity_filled_total",
		Help: "Total quantity filled across all trades.",
	})
)
