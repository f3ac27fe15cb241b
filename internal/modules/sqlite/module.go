package sqlite

import (
	"context"
	"fmt"

	"order_audit/internal/modules/config"
	"order_audit/pkg/db"

	"go.uber.org/fx"
)

// Module provides the read-only store handle. The lifecycle hook closes it
// on every exit path, including a failed query run.
func Module() fx.Option {
	return fx.Module("sqlite",
		fx.Provide(
			func(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (*db.SqliteManager, error) {
				manager, err := db.NewSqliteManager(ctx, db.StoreConfig{
					Path: cfg.DB.Path,
				})
				if err != nil {
					return nil, fmt.Errorf("failed to open order store: %w", err)
				}

				lc.Append(fx.Hook{
					OnStop: func(context.Context) error {
						return manager.Close()
					},
				})

				return manager, nil
			},
		),
	)
}
