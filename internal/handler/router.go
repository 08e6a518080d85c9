package handler

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dish-studio/internal/handler/api"
	"dish-studio/internal/handler/middleware"
	"dish-studio/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Slot     *api.SlotHandler
	Creation *api.CreationHandler
	AdReward *api.AdRewardHandler
	Prompt   *api.PromptHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimit
	Logger    *middleware.Logger
	Metrics   *middleware.HTTPMetrics
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.Middleware())
	engine.Use(mw.Metrics.Handler())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{mw.RateLimit.Handler()}

	apiGroup := engine.Group("/api")
	{
		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "/public-summary", Handler: h.Slot.PublicSummary},
			})

			authRequired := slots.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/reserve", Handler: h.Slot.Reserve, Mw: limited},
				{Method: http.MethodPost, Path: "/cancel", Handler: h.Slot.Cancel},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Slot.Summary},
			})
		}

		creations := apiGroup.Group("/creations")
		creations.Use(mw.Auth.RequireAuth())
		{
			addRoutes(creations, []route{
				{Method: http.MethodPost, Path: "/generate", Handler: h.Creation.Generate, Mw: limited},
				{Method: http.MethodGet, Path: "/status", Handler: h.Creation.Status},
			})
		}

		ads := apiGroup.Group("/ads/reward")
		ads.Use(mw.Auth.RequireAuth())
		{
			addRoutes(ads, []route{
				{Method: http.MethodPost, Path: "/request", Handler: h.AdReward.Request, Mw: limited},
				{Method: http.MethodPost, Path: "/confirm", Handler: h.AdReward.Confirm, Mw: limited},
			})
		}

		prompts := apiGroup.Group("/prompts")
		prompts.Use(mw.Auth.RequireAuth())
		{
			addRoutes(prompts, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: h.Prompt.Validate, Mw: limited},
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
