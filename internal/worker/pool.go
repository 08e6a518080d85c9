package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dish-studio/internal/infra/queue"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/metrics"

	"github.com/google/uuid"
)

type Processor interface {
	Process(ctx context.Context, requestID uuid.UUID) Outcome
	Exhaust(ctx context.Context, requestID uuid.UUID, cause error) error
}

// OutcomeSink receives one record per finished attempt, in addition to the
// Prometheus counters.
type OutcomeSink interface {
	Record(ctx context.Context, outcome string)
}

type nopSink struct{}

func (nopSink) Record(context.Context, string) {}

func NopSink() OutcomeSink { return nopSink{} }

// Pool polls the queue and runs each job through the processor. Several
// workers may claim concurrently; correctness rests on the processor being
// idempotent per request.
type Pool struct {
	queue       queue.Queue
	processor   Processor
	metrics     *metrics.Metrics
	sink        OutcomeSink
	size        int
	batch       int
	interval    time.Duration
	maxAttempts int
	backoffBase time.Duration
	backoffCap  time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPool(q queue.Queue, processor Processor, m *metrics.Metrics, sink OutcomeSink, cfg config.Config) *Pool {
	if sink == nil {
		sink = NopSink()
	}
	size := cfg.Worker.PoolSize
	if size < 1 {
		size = 1
	}
	batch := int(cfg.Worker.BatchSize)
	if batch < 1 {
		batch = 1
	}
	return &Pool{
		queue:       q,
		processor:   processor,
		metrics:     m,
		sink:        sink,
		size:        size,
		batch:       batch,
		interval:    cfg.Worker.PollInterval,
		maxAttempts: int(cfg.Worker.MaxAttempts),
		backoffBase: cfg.Worker.BackoffBase,
		backoffCap:  cfg.Worker.BackoffCap,
	}
}

func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			p.loop(ctx, id)
		}(i)
	}
	slog.Info("worker pool started", "size", p.size, "batch", p.batch)
}

// Stop cancels polling and waits for in-flight jobs, or until ctx ends.
func (p *Pool) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("worker pool stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) loop(ctx context.Context, id int) {
	for {
		n, err := p.RunOnce(ctx)
		if err != nil && ctx.Err() == nil {
			slog.WarnContext(ctx, "queue receive failed", "worker", id, "error", err)
		}
		if n > 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.interval):
		}
	}
}

// RunOnce claims one batch and handles it; returns the number of jobs seen.
func (p *Pool) RunOnce(ctx context.Context) (int, error) {
	jobs, err := p.queue.Receive(ctx, p.batch)
	if err != nil {
		return 0, err
	}
	for _, job := range jobs {
		p.handle(ctx, job)
	}
	return len(jobs), nil
}

func (p *Pool) handle(ctx context.Context, job queue.Job) {
	logger := slog.With("request_id", job.RequestID, "attempt", job.Attempt)

	// The batch shares one claim; renew the lease so a job that waited behind
	// its siblings is not redelivered while it runs.
	owned, err := p.queue.Extend(ctx, job)
	if err != nil {
		logger.WarnContext(ctx, "lease renewal failed, leaving job for redelivery", "error", err)
		return
	}
	if !owned {
		logger.InfoContext(ctx, "stale delivery skipped")
		return
	}

	out := p.processor.Process(ctx, job.RequestID)

	// Queue bookkeeping must survive shutdown so the job is not redelivered early.
	qctx := context.WithoutCancel(ctx)

	var label string
	switch out.Kind {
	case OutcomeSuccess:
		label = metrics.OutcomeSuccess
		if err := p.queue.Ack(qctx, job); err != nil {
			logger.WarnContext(ctx, "ack failed", "error", err)
		}
	case OutcomeTerminal:
		label = metrics.OutcomeTerminal
		if err := p.queue.Bury(qctx, job, out.Err); err != nil {
			logger.WarnContext(ctx, "bury failed", "error", err)
		}
	default:
		if p.maxAttempts > 0 && job.Attempt >= p.maxAttempts {
			label = metrics.OutcomeExhausted
			if err := p.processor.Exhaust(qctx, job.RequestID, out.Err); err != nil {
				// Leave the job to redeliver; Exhaust is idempotent.
				logger.ErrorContext(ctx, "exhaust failed", "error", err)
				p.retry(qctx, job, out.Err)
				break
			}
			if err := p.queue.Bury(qctx, job, out.Err); err != nil {
				logger.WarnContext(ctx, "bury failed", "error", err)
			}
			break
		}
		label = metrics.OutcomeRetry
		logger.InfoContext(ctx, "job will retry", "cause", errString(out.Err))
		p.retry(qctx, job, out.Err)
	}

	p.metrics.ObserveOutcome(label)
	p.sink.Record(qctx, label)
}

func (p *Pool) retry(ctx context.Context, job queue.Job, cause error) {
	delay := Backoff(job.Attempt, p.backoffBase, p.backoffCap)
	if err := p.queue.Retry(ctx, job, delay, cause); err != nil {
		slog.WarnContext(ctx, "retry scheduling failed", "request_id", job.RequestID, "error", err)
	}
}
