package domain

// Trade records one fill between a resting (maker) order and an
// incoming (taker) order. Price is the maker's price.
type Trade struct {
	MakerID  uint64 `json:"maker_id"`
	TakerID  uint64 `json:"taker_id"`
	Price    uint64 `json:"price"`
	Quantity uint64 `json:"quantity"`
}
