package service

import (
	"fmt"
	"strconv"
	"time"

	"order_audit/internal/helper"
	"order_audit/internal/models"
)

func formatSummary(count int, symbol, date string, tzOffsetHours int) string {
	return fmt.Sprintf("found %d orders for %s on %s (tz=%s)",
		count, symbol, date, helper.FormatOffset(tzOffsetHours))
}

func formatOrderLine(o *models.Order) string {
	ts := time.UnixMilli(o.Time).In(time.Local).Format("2006-01-02 15:04:05")
	return fmt.Sprintf("%s | id=%d | %-4s %-5s %-7s | px=%s qty=%s | RO=%t CP=%t | %s",
		ts,
		o.OrderID,
		o.Side,
		o.PositionSide,
		o.Status,
		g6(o.AvgPrice),
		g6(o.ExecutedQty),
		o.ReduceOnly,
		o.ClosePosition,
		o.Type,
	)
}

// g6 renders with 6 significant digits, the usual precision for futures
// prices and quantities around here.
func g6(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
