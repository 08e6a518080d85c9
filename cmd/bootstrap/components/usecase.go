package components

import (
	"dish-studio/internal/domain/slot"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/metrics"
	"dish-studio/internal/usecase"
	"dish-studio/internal/usecase/commands"
	"dish-studio/internal/usecase/queries"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSlotPolicy,
	func() prometheus.Registerer { return prometheus.DefaultRegisterer },
	func() prometheus.Gatherer { return prometheus.DefaultGatherer },
	metrics.New,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLedger,
		commands.NewRecovery,
		commands.NewSlotCommands,
		commands.NewCreationCommands,
		commands.NewAdRewardCommands,
		commands.NewPromptCommands,
		func(r *commands.Recovery) queries.Reclaimer { return r },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewCreationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSlotPolicy(cfg config.Config) slot.Policy {
	return slot.Policy{
		FreeDefault: cfg.Slot.FreePerUserDefault,
		FreeCreator: cfg.Slot.FreePerUserCreator,
		FreeStaff:   cfg.Slot.FreePerUserStaff,
		AdPerUser:   cfg.Slot.AdPerUserDaily,
	}
}
