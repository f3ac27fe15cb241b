package report

import (
	"context"

	"order_audit/internal/modules/config"
	"order_audit/internal/modules/report/service"
	"order_audit/pkg/tracing"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("report",
		fx.Provide(
			service.NewReport, // *service.Report
		),
		fx.Invoke(func(
			lc fx.Lifecycle,
			cfg *config.Config,
			r *service.Report,
			p service.Params,
		) error {
			if cfg.Jaeger.Host != "" {
				tracing.SetServiceName("order_audit")
				_, closeTracer, err := tracing.InitTracer(tracing.Config{
					Host: cfg.Jaeger.Host,
					Port: cfg.Jaeger.Port,
				})
				if err != nil {
					return err
				}
				lc.Append(fx.Hook{
					OnStop: func(context.Context) error {
						closeTracer()
						return nil
					},
				})
			}

			// Run inside the lifecycle so a failed run still stops the hooks
			// appended before it, the store close included.
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return r.Run(ctx, p)
				},
			})
			return nil
		}),
	)
}
