package feed

import (
	"sync"

	"go.uber.org/zap"

	"github.com/olyamironova/limit-order-book/internal/domain"
)

// Subscriber receives trades on C until Unsubscribe closes it.
type Subscriber struct {
	C chan domain.Trade
}

// Broadcaster fans executed trades out to any number of subscribers.
// Publishing never blocks: a subscriber whose buffer is full misses
// the trade.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[*Subscriber]struct{}
	buffer int
	log    *zap.Logger
}

func NewBroadcaster(buffer int, log *zap.Logger) *Broadcaster {
	if buffer <= 0 {
		buffer = 64
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Broadcaster{
		subs:   make(map[*Subscriber]struct{}),
		buffer: buffer,
		log:    log,
	}
}

func (b *Broadcaster) Subscribe() *Subscriber {
	sub := &Subscriber{C: make(chan domain.Trade, b.buffer)}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Unsubscribe removes sub and closes its channel. Safe to call twice.
func (b *Broadcaster) Unsubscribe(sub *Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.C)
	}
}

func (b *Broadcaster) Publish(t domain.Trade) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		select {
		case sub.C <- t:
		default:
			b.log.Warn("trade feed subscriber lagging, trade dropped",
				zap.Uint64("maker_id", t.MakerID),
				zap.Uint64("taker_id", t.TakerID),
			)
		}
	}
}
