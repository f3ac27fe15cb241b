package orders

import (
	"order_audit/internal/modules/orders/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("orders",
		fx.Provide(
			service.NewOrders, // *service.Orders
		),
	)
}
