package core

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/olyamironova/limit-order-book/internal/domain"
	"github.com/olyamironova/limit-order-book/internal/port"
)

var _ port.OrderBook = (*LimitOrderBook)(nil)

// LimitOrderBook is the in-memory implementation of port.OrderBook.
// Each side of the book is an independently locked slice kept sorted
// by price-time priority, best order first. PlaceOrder holds at most
// one side lock at any instant: first the opposite side while
// matching, then the own side while resting a remainder. The two
// phases are each atomic but not atomic as a pair, so concurrent
// placements may interleave between them.
type LimitOrderBook struct {
	clock port.Clock
	log   *zap.Logger

	buyMu sync.RWMutex
	buys  []domain.Order

	sellMu sync.RWMutex
	sells  []domain.Order
}

func NewLimitOrderBook(clock port.Clock, log *zap.Logger) *LimitOrderBook {
	if log == nil {
		log = zap.NewNop()
	}
	return &LimitOrderBook{clock: clock, log: log}
}

// PlaceOrder matches o against the opposite side and rests any
// remaining quantity on o's own side.
func (b *LimitOrderBook) PlaceOrder(o domain.Order) []domain.Trade {
	trades, remaining := b.matchOpposite(o)
	if remaining > 0 {
		b.restRemainder(o, remaining)
	}

	if ce := b.log.Check(zap.DebugLevel, "order placed"); ce != nil {
		ce.Write(
			zap.Uint64("order_id", o.ID),
			zap.String("side", string(o.Side)),
			zap.Int("trades", len(trades)),
			zap.Uint64("remaining", remaining),
			zap.Int("bids", b.depth(domain.Buy)),
			zap.Int("asks", b.depth(domain.Sell)),
		)
	}
	return trades
}

func (b *LimitOrderBook) BestBuy() *domain.BestOrder {
	b.buyMu.RLock()
	defer b.buyMu.RUnlock()
	return bestOf(b.buys)
}

func (b *LimitOrderBook) BestSell() *domain.BestOrder {
	b.sellMu.RLock()
	defer b.sellMu.RUnlock()
	return bestOf(b.sells)
}

// matchOpposite consumes resting orders on the side opposite to o,
// best first, and compacts filled orders out of the slice. It returns
// the trades made and o's unfilled quantity.
func (b *LimitOrderBook) matchOpposite(o domain.Order) ([]domain.Trade, uint64) {
	mu, side := b.opposite(o.Side)
	mu.Lock()
	defer mu.Unlock()

	var trades []domain.Trade
	remaining := o.Quantity

	for i := range *side {
		r := &(*side)[i]
		if remaining == 0 || !priceCrosses(o, r.Price) {
			// the side is sorted best first, so nothing past r can match
			break
		}
		if r.Quantity > remaining {
			trades = append(trades, domain.Trade{MakerID: r.ID, TakerID: o.ID, Price: r.Price, Quantity: remaining})
			r.Quantity -= remaining
			remaining = 0
			break
		}
		trades = append(trades, domain.Trade{MakerID: r.ID, TakerID: o.ID, Price: r.Price, Quantity: r.Quantity})
		remaining -= r.Quantity
		r.Quantity = 0
	}

	*side = compact(*side)
	return trades, remaining
}

// restRemainder places the unfilled part of o on its own side. The
// remainder keeps the submission's side and gets a fresh timestamp, so
// it queues behind older orders at the same price.
func (b *LimitOrderBook) restRemainder(o domain.Order, remaining uint64) {
	rest := domain.Order{
		ID:        o.ID,
		Side:      o.Side,
		Price:     o.Price,
		Quantity:  remaining,
		Timestamp: b.clock.Now(),
	}

	mu, side := b.own(o.Side)
	mu.Lock()
	defer mu.Unlock()
	*side = append(*side, rest)
	sortSide(*side, o.Side)
}

func (b *LimitOrderBook) own(s domain.Side) (*sync.RWMutex, *[]domain.Order) {
	if s == domain.Buy {
		return &b.buyMu, &b.buys
	}
	return &b.sellMu, &b.sells
}

func (b *LimitOrderBook) opposite(s domain.Side) (*sync.RWMutex, *[]domain.Order) {
	if s == domain.Buy {
		return &b.sellMu, &b.sells
	}
	return &b.buyMu, &b.buys
}

func (b *LimitOrderBook) depth(s domain.Side) int {
	mu, side := b.own(s)
	mu.RLock()
	defer mu.RUnlock()
	return len(*side)
}

// priceCrosses reports whether a resting order at restingPrice is an
// acceptable counterparty for o.
func priceCrosses(o domain.Order, restingPrice uint64) bool {
	if o.Side == domain.Buy {
		return restingPrice <= o.Price
	}
	return restingPrice >= o.Price
}

// sortSide restores price-time priority: best price first (descending
// for buys, ascending for sells), older orders first within a level.
func sortSide(orders []domain.Order, s domain.Side) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].Price == orders[j].Price {
			return orders[i].Timestamp < orders[j].Timestamp
		}
		if s == domain.Buy {
			return orders[i].Price > orders[j].Price
		}
		return orders[i].Price < orders[j].Price
	})
}

// compact drops zero-quantity orders, preserving the relative order of
// the survivors.
func compact(orders []domain.Order) []domain.Order {
	kept := orders[:0]
	for _, o := range orders {
		if o.Quantity > 0 {
			kept = append(kept, o)
		}
	}
	return kept
}

// bestOf aggregates every resting order priced at the front element's
// price. Orders are excluded from the sum by the front element's id,
// not its position, which relies on ids being unique across the book.
func bestOf(orders []domain.Order) *domain.BestOrder {
	if len(orders) == 0 {
		return nil
	}
	best := domain.BestOrder{
		Price:         orders[0].Price,
		TotalQuantity: orders[0].Quantity,
	}
	for _, o := range orders {
		if o.Price == best.Price && o.ID != orders[0].ID {
			best.TotalQuantity += o.Quantity
		}
	}
	return &best
}
