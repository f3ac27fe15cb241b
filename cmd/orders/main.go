package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"order_audit/internal/modules/config"
	"order_audit/internal/modules/orders"
	"order_audit/internal/modules/report"
	"order_audit/internal/modules/report/service"
	"order_audit/internal/modules/sqlite"
	"order_audit/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const usage = `Usage:
  orders [-json] <trader_id> <symbol> <date: YYYY-MM-DD> [tz_offset_hours]

Examples:
  orders binance_xxx_deepseek_xxx 0GUSDT 2025-11-09
  orders binance_xxx_deepseek_xxx BTCUSDT 2025-11-09 8`

func main() {
	params, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			// usage goes to stdout and never touches the store
			fmt.Println(usage)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "orders: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "orders: init logger: %v\n", err)
		os.Exit(1)
	}
	logger.SetServiceName("order_audit")

	app := fx.New(appOptions(params)...)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "orders: %v\n", err)
		_ = app.Stop(ctx)
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "orders: %v\n", err)
		os.Exit(1)
	}
}

func appOptions(params service.Params) []fx.Option {
	return []fx.Option{
		fx.NopLogger,
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
			func() service.Params {
				return params
			},
		),
		config.Module(),
		sqlite.Module(),
		orders.Module(),
		report.Module(),
	}
}

var errUsage = errors.New("usage")

func parseArgs(argv []string) (service.Params, error) {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	jsonOut := fs.Bool("json", false, "emit the listing as a JSON document")
	if err := fs.Parse(argv); err != nil {
		return service.Params{}, errUsage
	}

	args := fs.Args()
	if len(args) < 3 {
		return service.Params{}, errUsage
	}

	params := service.Params{
		TraderID: args[0],
		Symbol:   args[1],
		Date:     args[2],
		JSON:     *jsonOut,
	}
	if len(args) > 3 {
		tz, err := strconv.Atoi(args[3])
		if err != nil {
			return service.Params{}, errors.Wrapf(err, "invalid tz_offset_hours %q", args[3])
		}
		params.TZOffsetHours = &tz
	}
	return params, nil
}
