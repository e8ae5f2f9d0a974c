package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookloop/internal/handler/api"
	"bookloop/internal/handler/middleware"
	"bookloop/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Book     *api.BookHandler
	Copy     *api.CopyHandler
	Exchange *api.ExchangeHandler
	User     *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	throttled := []gin.HandlerFunc{limiter.Limit()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/books", Handler: h.Book.List},
			{Method: http.MethodGet, Path: "/books/:id", Handler: h.Book.Get},
			{Method: http.MethodGet, Path: "/books/:id/copies", Handler: h.Book.ListCopies},
			{Method: http.MethodGet, Path: "/copies/:id", Handler: h.Copy.Get},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.User.Me},
			{Method: http.MethodGet, Path: "/me/copies", Handler: h.Copy.ListMine},
			{Method: http.MethodPost, Path: "/copies", Handler: h.Copy.Add},
			{Method: http.MethodPost, Path: "/copies/:id/exchanges", Handler: h.Exchange.Request, Mw: throttled},
		})

		exchanges := authRequired.Group("/exchanges")
		{
			addRoutes(exchanges, []route{
				{Method: http.MethodGet, Path: "/sent", Handler: h.Exchange.ListSent},
				{Method: http.MethodGet, Path: "/received", Handler: h.Exchange.ListReceived},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Exchange.Get},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Exchange.Accept, Mw: throttled},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Exchange.Reject, Mw: throttled},
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
