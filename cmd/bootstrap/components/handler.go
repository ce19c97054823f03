package components

import (
	"machine-rental/internal/handler"
	"machine-rental/internal/handler/api"
	"machine-rental/internal/handler/middleware"
	"machine-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewClientBookingHandler,
		api.NewOwnerBookingHandler,
		api.NewMachineHandler,
		api.NewDashboardHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	clientBooking *api.ClientBookingHandler,
	ownerBooking *api.OwnerBookingHandler,
	machine *api.MachineHandler,
	dashboard *api.DashboardHandler,
	profile *api.ProfileHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:          auth,
		Catalog:       catalog,
		ClientBooking: clientBooking,
		OwnerBooking:  ownerBooking,
		Machine:       machine,
		Dashboard:     dashboard,
		Profile:       profile,
	}
}
