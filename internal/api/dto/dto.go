package dto

// PlaceOrderRequest is the submission wire shape. The engine does not
// validate fields; the handler layer checks only that the side token
// parses, so a zero-quantity order passes through and contributes
// nothing.
type PlaceOrderRequest struct {
	ID       uint64 `json:"id"`
	Side     string `json:"side" binding:"required"`
	Price    uint64 `json:"price"`
	Quantity uint64 `json:"quantity"`
}

type Trade struct {
	MakerID  uint64 `json:"maker_id"`
	TakerID  uint64 `json:"taker_id"`
	Price    uint64 `json:"price"`
	Quantity uint64 `json:"quantity"`
}

type BestOrder struct {
	Price         uint64 `json:"price"`
	TotalQuantity uint64 `json:"total_quantity"`
}
