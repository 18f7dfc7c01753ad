package domain

// BestOrder aggregates every resting order at one side's best price
// level. It is derived on each query and never stored.
type BestOrder struct {
	Price         uint64 `json:"price"`
	TotalQuantity uint64 `json:"total_quantity"`
}
