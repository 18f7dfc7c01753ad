package port

import (
	"github.com/olyamironova/limit-order-book/internal/domain"
)

// OrderBook is the matching engine capability.
type OrderBook interface {
	// PlaceOrder submits an order, matches it against the opposite side
	// under price-time priority and rests any remaining quantity. The
	// returned trades are in execution order, best price first. It
	// cannot fail; a zero-quantity order yields no trades and rests
	// nothing.
	PlaceOrder(o domain.Order) []domain.Trade

	// BestBuy returns the highest resting buy price together with the
	// total quantity at that level, or nil when no buy orders rest.
	BestBuy() *domain.BestOrder

	// BestSell is symmetric: lowest resting sell price, or nil.
	BestSell() *domain.BestOrder
}
