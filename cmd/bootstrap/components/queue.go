package components

import (
	"context"
	"fmt"
	"log/slog"

	"dish-studio/internal/infra/awsclient"
	"dish-studio/internal/infra/queue"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/usecase/commands"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewAWSClients,
		NewQueue,
		func(q queue.Queue) commands.Enqueuer { return q },
	),
)

// NewAWSClients returns nil when nothing AWS is configured, so local runs
// need no credentials.
func NewAWSClients(cfg config.Config) (*awsclient.Clients, error) {
	if cfg.Queue.Driver != "sqs" && cfg.AWS.CloudWatchNamespace == "" {
		return nil, nil
	}
	return awsclient.NewClients(context.Background(), cfg.AWS)
}

func NewQueue(cfg config.Config, q *sqlc.Queries, db sqlc.DBTX, clk clock.Clock, aws *awsclient.Clients) (queue.Queue, error) {
	switch cfg.Queue.Driver {
	case "sqs":
		if cfg.AWS.SQSQueueURL == "" {
			return nil, fmt.Errorf("QUEUE_DRIVER=sqs requires AWS_SQS_QUEUE_URL")
		}
		slog.Info("using SQS job queue", "queue_url", cfg.AWS.SQSQueueURL)
		return queue.NewSQSQueue(aws.SQS, cfg), nil
	case "postgres", "":
		return queue.NewPostgresQueue(q, db, clk, cfg), nil
	default:
		return nil, fmt.Errorf("unknown QUEUE_DRIVER %q", cfg.Queue.Driver)
	}
}
