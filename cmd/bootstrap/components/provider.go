package components

import (
	"net/http"

	"dish-studio/internal/infra/provider"
	"dish-studio/internal/usecase/commands"
	"dish-studio/internal/worker"

	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		// Per-call timeouts come from ProviderConfig; the shared client only pools connections.
		func() *http.Client { return &http.Client{} },
		fx.Annotate(
			provider.NewGenerationClient,
			fx.As(new(worker.Generator)),
		),
		fx.Annotate(
			provider.NewSafetyClient,
			fx.As(new(worker.SafetyChecker)),
		),
		fx.Annotate(
			provider.NewModerationClient,
			fx.As(new(commands.Moderator)),
		),
	),
)
