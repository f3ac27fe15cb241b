package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"order_audit/internal/helper"
	"order_audit/internal/models"
	"order_audit/internal/modules/config"
	ordersvc "order_audit/internal/modules/orders/service"
	"order_audit/pkg/logger"

	"github.com/bytedance/sonic"
	"github.com/opentracing/opentracing-go"
)

// OrderLister is what the report needs from the store.
type OrderLister interface {
	ListDay(ctx context.Context, traderID, symbol string, startMS, endMS int64) ([]*models.Order, error)
}

// Params is one invocation of the tool.
type Params struct {
	TraderID string
	Symbol   string
	Date     string // YYYY-MM-DD

	// TZOffsetHours overrides the configured day offset when set.
	TZOffsetHours *int

	JSON bool
}

type Report struct {
	cfg   *config.Config
	store OrderLister
	out   io.Writer
}

// NewReport instance
func NewReport(cfg *config.Config, store *ordersvc.Orders) *Report {
	return &Report{
		cfg:   cfg,
		store: store,
		out:   os.Stdout,
	}
}

// Run prints the day listing for one trader/symbol pair. The window is
// computed in the requested offset; row timestamps stay in the machine's
// local zone, same as the reconcile tooling around this store.
func (r *Report) Run(ctx context.Context, p Params) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "report.run")
	defer span.Finish()

	tzOffsetHours := r.cfg.TZOffsetHours
	if p.TZOffsetHours != nil {
		tzOffsetHours = *p.TZOffsetHours
	}

	startMS, endMS, err := helper.DayRangeMS(p.Date, tzOffsetHours)
	if err != nil {
		return err
	}

	orders, err := r.store.ListDay(ctx, p.TraderID, p.Symbol, startMS, endMS)
	if err != nil {
		return err
	}
	logger.Info("loaded %d orders for %s/%s in [%d, %d]",
		len(orders), p.TraderID, p.Symbol, startMS, endMS)

	if p.JSON {
		return r.writeJSON(p, tzOffsetHours, orders)
	}
	return r.writeText(p, tzOffsetHours, orders)
}

func (r *Report) writeText(p Params, tzOffsetHours int, orders []*models.Order) error {
	if _, err := fmt.Fprintln(r.out, formatSummary(len(orders), p.Symbol, p.Date, tzOffsetHours)); err != nil {
		return err
	}
	for _, order := range orders {
		if _, err := fmt.Fprintln(r.out, formatOrderLine(order)); err != nil {
			return err
		}
	}
	return nil
}

type dayListing struct {
	TraderID string          `json:"trader_id"`
	Symbol   string          `json:"symbol"`
	Date     string          `json:"date"`
	TZ       string          `json:"tz"`
	Count    int             `json:"count"`
	Orders   []*models.Order `json:"orders"`
}

func (r *Report) writeJSON(p Params, tzOffsetHours int, orders []*models.Order) error {
	listing := dayListing{
		TraderID: p.TraderID,
		Symbol:   p.Symbol,
		Date:     p.Date,
		TZ:       helper.FormatOffset(tzOffsetHours),
		Count:    len(orders),
		Orders:   orders,
	}
	data, err := sonic.MarshalIndent(listing, "", "  ")
	if err != nil {
		return fmt.Errorf("report.writeJSON: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}
