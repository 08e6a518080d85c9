package queue

import (
	"context"
	"log/slog"
	"time"

	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type JobQueries interface {
	EnqueueJob(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueJobParams) (int64, error)
	ClaimJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimJobsParams) ([]sqlc.Jobs, error)
	ExtendJobLease(ctx context.Context, db sqlc.DBTX, arg sqlc.ExtendJobLeaseParams) (int64, error)
	CompleteJob(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RetryJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RetryJobParams) error
	FailJob(ctx context.Context, db sqlc.DBTX, arg sqlc.FailJobParams) error
}

// PostgresQueue stores jobs in the jobs table. Claims take a lease so a
// crashed worker's job becomes visible again once locked_until passes; a
// batch is claimed at once, so each job renews its lease when work starts.
type PostgresQueue struct {
	queries     JobQueries
	db          sqlc.DBTX
	clock       clock.Clock
	name        string
	dedupWindow time.Duration
	lease       time.Duration
}

func NewPostgresQueue(queries JobQueries, db sqlc.DBTX, clk clock.Clock, cfg config.Config) *PostgresQueue {
	return &PostgresQueue{
		queries:     queries,
		db:          db,
		clock:       clk,
		name:        cfg.Queue.JobName,
		dedupWindow: cfg.Queue.DedupWindow,
		lease:       cfg.Queue.Lease,
	}
}

func (q *PostgresQueue) Enqueue(ctx context.Context, requestID uuid.UUID) error {
	body, err := encodePayload(requestID)
	if err != nil {
		return err
	}
	now := q.clock.Now()
	n, err := q.queries.EnqueueJob(ctx, q.db, sqlc.EnqueueJobParams{
		Name:         q.name,
		SingletonKey: requestID.String(),
		Payload:      body,
		RunAt:        pgconv.TimeToPgtype(now),
		DedupCutoff:  pgconv.TimeToPgtype(now.Add(-q.dedupWindow)),
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to enqueue job"), ErrUnavailable)
	}
	if n == 0 {
		slog.DebugContext(ctx, "job deduplicated", "request_id", requestID)
	}
	return nil
}

func (q *PostgresQueue) Receive(ctx context.Context, max int) ([]Job, error) {
	now := q.clock.Now()
	rows, err := q.queries.ClaimJobs(ctx, q.db, sqlc.ClaimJobsParams{
		LockedUntil: pgconv.TimeToPgtype(now.Add(q.lease)),
		Name:        q.name,
		ClaimAt:     pgconv.TimeToPgtype(now),
		BatchSize:   int32(max),
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to claim jobs"), ErrUnavailable)
	}

	jobs := make([]Job, 0, len(rows))
	for _, row := range rows {
		job := Job{Handle: row.ID.String(), Attempt: int(row.Attempt)}
		requestID, err := decodePayload(row.Payload)
		if err != nil {
			slog.ErrorContext(ctx, "burying malformed job", "job_id", row.ID, "error", err)
			if berr := q.Bury(ctx, job, err); berr != nil {
				return nil, berr
			}
			continue
		}
		job.RequestID = requestID
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (q *PostgresQueue) Extend(ctx context.Context, job Job) (bool, error) {
	id, err := uuid.Parse(job.Handle)
	if err != nil {
		return false, errs.Wrap(err, "invalid job handle")
	}
	n, err := q.queries.ExtendJobLease(ctx, q.db, sqlc.ExtendJobLeaseParams{
		LockedUntil: pgconv.TimeToPgtype(q.clock.Now().Add(q.lease)),
		ID:          id,
		Attempt:     int32(job.Attempt),
	})
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "failed to extend job lease"), ErrUnavailable)
	}
	return n == 1, nil
}

func (q *PostgresQueue) Ack(ctx context.Context, job Job) error {
	id, err := uuid.Parse(job.Handle)
	if err != nil {
		return errs.Wrap(err, "invalid job handle")
	}
	if err := q.queries.CompleteJob(ctx, q.db, id); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to complete job"), ErrUnavailable)
	}
	return nil
}

func (q *PostgresQueue) Retry(ctx context.Context, job Job, delay time.Duration, cause error) error {
	id, err := uuid.Parse(job.Handle)
	if err != nil {
		return errs.Wrap(err, "invalid job handle")
	}
	err = q.queries.RetryJob(ctx, q.db, sqlc.RetryJobParams{
		ID:        id,
		RunAt:     pgconv.TimeToPgtype(q.clock.Now().Add(delay)),
		LastError: lastError(cause),
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to reschedule job"), ErrUnavailable)
	}
	return nil
}

func (q *PostgresQueue) Bury(ctx context.Context, job Job, cause error) error {
	id, err := uuid.Parse(job.Handle)
	if err != nil {
		return errs.Wrap(err, "invalid job handle")
	}
	if err := q.queries.FailJob(ctx, q.db, sqlc.FailJobParams{ID: id, LastError: lastError(cause)}); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to bury job"), ErrUnavailable)
	}
	return nil
}

func lastError(cause error) pgtype.Text {
	if cause == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: causeText(cause), Valid: true}
}
