package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/handler/api"
	"campus-reserve/internal/handler/middleware"
	"campus-reserve/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Events *api.EventHandler
	Fests  *api.FestHandler
	Merch  *api.MerchHandler
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

	organizer := []gin.HandlerFunc{
		authMiddleware.RequireAuth(),
		authMiddleware.RequireRoleAtLeast(user.RoleOrganizer),
	}
	member := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	apiGroup := engine.Group("/api")
	{
		events := apiGroup.Group("/events")
		addRoutes(events, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Events.List, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Events.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Events.Create, Mw: organizer},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Events.Update, Mw: organizer},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Events.Delete, Mw: organizer},
			{Method: http.MethodPost, Path: "/:id/registrations", Handler: h.Events.Register, Mw: member},
			{Method: http.MethodGet, Path: "/:id/registrations", Handler: h.Events.ListRegistrations, Mw: organizer},
			{Method: http.MethodGet, Path: "/:id/registrations/me", Handler: h.Events.MyRegistration, Mw: member},
		})

		fests := apiGroup.Group("/fests")
		addRoutes(fests, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Fests.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Fests.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Fests.Create, Mw: organizer},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Fests.Update, Mw: organizer},
			{Method: http.MethodGet, Path: "/:id/events", Handler: h.Fests.ListEvents},
			{Method: http.MethodPost, Path: "/:id/events", Handler: h.Fests.AddEvent, Mw: organizer},
			{Method: http.MethodDelete, Path: "/:id/events/:eventId", Handler: h.Fests.RemoveEvent, Mw: organizer},
			{Method: http.MethodPost, Path: "/:id/events/:eventId/registrations", Handler: h.Fests.Register, Mw: member},
		})

		merch := apiGroup.Group("/merch")
		addRoutes(merch, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Merch.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Merch.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Merch.Create, Mw: organizer},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Merch.Update, Mw: organizer},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Merch.Delete, Mw: organizer},
			{Method: http.MethodPost, Path: "/:id/orders", Handler: h.Merch.PlaceOrder, Mw: member},
			{Method: http.MethodGet, Path: "/:id/orders", Handler: h.Merch.ListOrders, Mw: organizer},
			{Method: http.MethodPatch, Path: "/:id/orders/:orderId", Handler: h.Merch.SetOrderStatus, Mw: organizer},
		})
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
