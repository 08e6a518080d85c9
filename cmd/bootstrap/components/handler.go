package components

import (
	"dish-studio/internal/handler"
	"dish-studio/internal/handler/api"
	reqdto "dish-studio/internal/handler/dto/request"
	"dish-studio/internal/handler/middleware"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewCreationHandler,
		api.NewAdRewardHandler,
		api.NewPromptHandler,
		middleware.NewAuthMiddleware,
		middleware.NewHTTPMetrics,
		NewRateLimit,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)

func NewRateLimit(cfg config.Config, clk clock.Clock) *middleware.RateLimit {
	return middleware.NewRateLimit(ratelimit.NewFixedWindow(cfg.RateLimit.Window, cfg.RateLimit.MaxHits), clk)
}

func NewHandlers(
	slot *api.SlotHandler,
	creation *api.CreationHandler,
	adReward *api.AdRewardHandler,
	prompt *api.PromptHandler,
) handler.Handlers {
	return handler.Handlers{Slot: slot, Creation: creation, AdReward: adReward, Prompt: prompt}
}

func NewMiddlewares(
	auth *middleware.AuthMiddleware,
	rl *middleware.RateLimit,
	logger *middleware.Logger,
	m *middleware.HTTPMetrics,
) handler.Middlewares {
	return handler.Middlewares{Auth: auth, RateLimit: rl, Logger: logger, Metrics: m}
}
