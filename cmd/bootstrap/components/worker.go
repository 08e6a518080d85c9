package components

import (
	"context"

	"dish-studio/internal/infra/awsclient"
	"dish-studio/internal/infra/provider"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/metrics"
	"dish-studio/internal/usecase/commands"
	"dish-studio/internal/usecase/shared"
	"dish-studio/internal/worker"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewProviderGate,
		NewOutcomeSink,
		func(
			uow shared.UnitOfWork,
			recovery *commands.Recovery,
			gen worker.Generator,
			safety worker.SafetyChecker,
			gate *rate.Limiter,
			clk clock.Clock,
			m *metrics.Metrics,
			cfg config.Config,
		) *worker.Pipeline {
			return worker.NewPipeline(uow, recovery, gen, safety, provider.IsRetryable, gate, clk, m, cfg)
		},
		func(p *worker.Pipeline) worker.Processor { return p },
		worker.NewPool,
		func(r *commands.Recovery) worker.Sweeper { return r },
		worker.NewReclaimLoop,
	),
	fx.Invoke(registerWorkerHooks),
)

// NewProviderGate shares one token bucket across all pipeline goroutines.
func NewProviderGate(cfg config.Config) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.Worker.ProviderRPS), cfg.Worker.ProviderBurst)
}

func NewOutcomeSink(cfg config.Config, aws *awsclient.Clients, clk clock.Clock) worker.OutcomeSink {
	if aws == nil {
		return worker.NopSink()
	}
	return worker.NewCloudWatchSink(aws.CloudWatch, cfg.AWS.CloudWatchNamespace, clk)
}

// The sweep always runs; the pool only when WORKER_ENABLED so API-only
// replicas can share a queue with dedicated workers.
func registerWorkerHooks(lc fx.Lifecycle, cfg config.Config, pool *worker.Pool, reclaim *worker.ReclaimLoop) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			reclaim.Start(context.Background())
			if cfg.Worker.Enabled {
				pool.Start(context.Background())
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			reclaim.Stop()
			if cfg.Worker.Enabled {
				return pool.Stop(ctx)
			}
			return nil
		},
	})
}
