package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"machine-rental/internal/domain/user"
	"machine-rental/internal/handler/api"
	"machine-rental/internal/handler/middleware"
	"machine-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth          *api.AuthHandler
	Catalog       *api.CatalogHandler
	ClientBooking *api.ClientBookingHandler
	OwnerBooking  *api.OwnerBookingHandler
	Machine       *api.MachineHandler
	Dashboard     *api.DashboardHandler
	Profile       *api.ProfileHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// The catalog is the public storefront: browsable without an account.
		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/machines", Handler: h.Catalog.ListMachines},
				{Method: http.MethodGet, Path: "/machines/:id", Handler: h.Catalog.GetMachine},
				{Method: http.MethodGet, Path: "/machines/:id/availability", Handler: h.Catalog.CheckAvailability},
			})
		}

		client := apiGroup.Group("/client")
		client.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleClient))
		{
			addRoutes(client, []route{
				{Method: http.MethodPost, Path: "/bookings", Handler: h.ClientBooking.Create},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.ClientBooking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.ClientBooking.Get},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.ClientBooking.Cancel},
				{Method: http.MethodPost, Path: "/bookings/:id/messages", Handler: h.ClientBooking.SendMessage},
			})
		}

		owner := apiGroup.Group("/owner")
		owner.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleOwner))
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Get},

				{Method: http.MethodGet, Path: "/machines", Handler: h.Machine.List},
				{Method: http.MethodPost, Path: "/machines", Handler: h.Machine.Create},
				{Method: http.MethodPatch, Path: "/machines/:id", Handler: h.Machine.Update},
				{Method: http.MethodPost, Path: "/machines/:id/instances", Handler: h.Machine.AddInstance},
				{Method: http.MethodPatch, Path: "/machines/:id/instances/:instanceId", Handler: h.Machine.UpdateInstance},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.OwnerBooking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.OwnerBooking.Get},
				{Method: http.MethodPost, Path: "/bookings/:id/approve", Handler: h.OwnerBooking.Approve},
				{Method: http.MethodPost, Path: "/bookings/:id/reject", Handler: h.OwnerBooking.Reject},
				{Method: http.MethodPost, Path: "/bookings/:id/send-back", Handler: h.OwnerBooking.SendBack},
				{Method: http.MethodPost, Path: "/bookings/:id/messages", Handler: h.OwnerBooking.SendMessage},
			})
		}

		profile := apiGroup.Group("/profile")
		profile.Use(authMiddleware.RequireAuth())
		{
			addRoutes(profile, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Profile.Get},
				{Method: http.MethodPut, Path: "", Handler: h.Profile.Update},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
