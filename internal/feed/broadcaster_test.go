package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olyamironova/limit-order-book/internal/domain"
)

func TestSubscriberReceivesPublishedTrades(t *testing.T) {
	b := NewBroadcaster(4, nil)
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	trade := domain.Trade{MakerID: 1, TakerID: 2, Price: 100, Quantity: 5}
	b.Publish(trade)

	select {
	case got := <-sub.C:
		assert.Equal(t, trade, got)
	case <-time.After(time.Second):
		t.Fatal("trade was not delivered")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster(4, nil)
	sub := b.Subscribe()

	b.Unsubscribe(sub)
	_, open := <-sub.C
	assert.False(t, open)

	// second unsubscribe is a no-op
	b.Unsubscribe(sub)
}

func TestPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	b := NewBroadcaster(1, nil)
	slow := b.Subscribe()
	defer b.Unsubscribe(slow)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			b.Publish(domain.Trade{MakerID: uint64(i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a lagging subscriber")
	}

	// the first trade is still there, the rest were dropped
	got := <-slow.C
	require.Equal(t, uint64(0), got.MakerID)
}

func TestPublishWithNoSubscribers(t *testing.T) {
	b := NewBroadcaster(4, nil)
	b.Publish(domain.Trade{MakerID: 1})
}
