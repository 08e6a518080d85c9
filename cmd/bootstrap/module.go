package bootstrap

import (
	"dish-studio/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.QueueModule,
	components.ProviderModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)
