package domain

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Order is a single limit order, incoming or resting. ID is assumed
// globally unique for the lifetime of the book; duplicate ids are
// undefined behaviour. Timestamp is assigned once at creation (Unix
// nanoseconds) and breaks price ties, older first.
type Order struct {
	ID        uint64 `json:"id"`
	Side      Side   `json:"side"`
	Price     uint64 `json:"price"`
	Quantity  uint64 `json:"quantity"`
	Timestamp int64  `json:"timestamp"`
}
