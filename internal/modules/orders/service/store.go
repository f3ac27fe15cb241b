package service

import (
	"context"
	"fmt"

	"order_audit/internal/models"
	"order_audit/pkg/db"
)

const listDaySQL = `
SELECT order_id, side, position_side, status, avg_price, executed_qty,
       reduce_only, close_position, type, time
FROM orders
WHERE trader_id = ? AND symbol = ? AND time BETWEEN ? AND ?
ORDER BY time`

// Orders reads the external orders table.
type Orders struct {
	db *db.SqliteManager
}

// NewOrders instance
func NewOrders(manager *db.SqliteManager) *Orders {
	return &Orders{
		db: manager,
	}
}

// ListDay returns every order of the trader/symbol pair whose time falls
// inside [startMS, endMS], both bounds inclusive, ascending by time. The
// whole set is materialized before the caller starts formatting.
func (o *Orders) ListDay(
	ctx context.Context,
	traderID, symbol string,
	startMS, endMS int64,
) (out []*models.Order, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("orders.ListDay: %w", err)
		}
	}()

	rows, err := o.db.Query(ctx, listDaySQL, traderID, symbol, startMS, endMS)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		order := &models.Order{
			TraderID: traderID,
			Symbol:   symbol,
		}
		if err = rows.Scan(
			&order.OrderID,
			&order.Side,
			&order.PositionSide,
			&order.Status,
			&order.AvgPrice,
			&order.ExecutedQty,
			&order.ReduceOnly,
			&order.ClosePosition,
			&order.Type,
			&order.Time,
		); err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	return out, rows.Err()
}
