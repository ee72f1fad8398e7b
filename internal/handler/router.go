package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-cart/internal/handler/api"
	"rental-cart/internal/handler/middleware"
	"rental-cart/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// SessionCounter reports how many cart sessions are held in memory.
type SessionCounter interface {
	Len() int
}

type Handlers struct {
	Cart       *api.CartHandler
	Submission *api.SubmissionHandler
	Sessions   SessionCounter
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck(h.Sessions))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cart := apiGroup.Group("/cart")
		cart.Use(sessionMiddleware.RequireSession())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/lines", Handler: h.Cart.AddLine},
				{Method: http.MethodDelete, Path: "/lines", Handler: h.Cart.RemoveLine},
				{Method: http.MethodPatch, Path: "/lines/quantity", Handler: h.Cart.UpdateQuantity},
				{Method: http.MethodPut, Path: "/lines/notes", Handler: h.Cart.UpdateLineNotes},
				{Method: http.MethodPut, Path: "/notes", Handler: h.Cart.SetCustomerNotes},
				{Method: http.MethodPost, Path: "/availability", Handler: h.Cart.CheckAvailability},
				{Method: http.MethodPost, Path: "/submit", Handler: h.Submission.Submit},
				{Method: http.MethodGet, Path: "/submission", Handler: h.Submission.Status},
			})
		}
	}
}

// @Summary Health check
// @Description Liveness probe, with the number of cart sessions held in memory
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func healthCheck(sessions SessionCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if sessions != nil {
			body["activeSessions"] = sessions.Len()
		}
		c.JSON(http.StatusOK, body)
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
