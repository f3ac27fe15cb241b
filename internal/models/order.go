package models

// Order is one row of the external reconcile `orders` table. The table is
// owned by the reconcile fetcher; this tool only reads it.
type Order struct {
	OrderID       int64   `json:"order_id"`
	TraderID      string  `json:"trader_id"`
	Symbol        string  `json:"symbol"`
	Side          string  `json:"side"`          // BUY | SELL
	PositionSide  string  `json:"position_side"` // LONG | SHORT | BOTH
	Status        string  `json:"status"`
	AvgPrice      float64 `json:"avg_price"`
	ExecutedQty   float64 `json:"executed_qty"`
	ReduceOnly    bool    `json:"reduce_only"`
	ClosePosition bool    `json:"close_position"`
	Type          string  `json:"type"`
	Time          int64   `json:"time"` // unix ms, ordering key
}
