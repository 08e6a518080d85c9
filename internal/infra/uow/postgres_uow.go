package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/infra/repository"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	ledgerRepo      shared.SlotLedgerRepository
	reservationRepo shared.ReservationRepository
	adRewardRepo    shared.AdRewardRepository
	requestRepo     shared.CreateRequestRepository
	validationRepo  shared.ValidationRepository
	dishRepo        shared.DishRepository
	safetyAuditRepo shared.SafetyAuditRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Ledger() shared.SlotLedgerRepository {
	if t.ledgerRepo == nil {
		t.ledgerRepo = repository.NewSlotLedgerRepository(t.uow.q, t.dbtx)
	}
	return t.ledgerRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) AdRewards() shared.AdRewardRepository {
	if t.adRewardRepo == nil {
		t.adRewardRepo = repository.NewAdRewardRepository(t.uow.q, t.dbtx)
	}
	return t.adRewardRepo
}

func (t *pgTx) Requests() shared.CreateRequestRepository {
	if t.requestRepo == nil {
		t.requestRepo = repository.NewCreateRequestRepository(t.uow.q, t.dbtx)
	}
	return t.requestRepo
}

func (t *pgTx) Validations() shared.ValidationRepository {
	if t.validationRepo == nil {
		t.validationRepo = repository.NewValidationRepository(t.uow.q, t.dbtx)
	}
	return t.validationRepo
}

func (t *pgTx) Dishes() shared.DishRepository {
	if t.dishRepo == nil {
		t.dishRepo = repository.NewDishRepository(t.uow.q, t.dbtx)
	}
	return t.dishRepo
}

func (t *pgTx) SafetyAudits() shared.SafetyAuditRepository {
	if t.safetyAuditRepo == nil {
		t.safetyAuditRepo = repository.NewSafetyAuditRepository(t.uow.q, t.dbtx)
	}
	return t.safetyAuditRepo
}

// commandReads serves unlocked point reads outside any transaction.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX
}

func (r *commandReads) ReservationByUserAndKey(ctx context.Context, userID uuid.UUID, key string) (*reservation.Reservation, error) {
	return repository.NewReservationRepository(r.uow.q, r.dbtx).FindByUserAndKey(ctx, r.dbtx, userID, key)
}

func (r *commandReads) RequestByUserAndKey(ctx context.Context, userID uuid.UUID, key string) (*creation.Request, error) {
	return repository.NewCreateRequestRepository(r.uow.q, r.dbtx).FindByUserAndKey(ctx, r.dbtx, userID, key)
}

func (r *commandReads) RequestByID(ctx context.Context, id uuid.UUID) (*creation.Request, error) {
	return repository.NewCreateRequestRepository(r.uow.q, r.dbtx).FindByID(ctx, r.dbtx, id)
}

func (r *commandReads) ValidationByID(ctx context.Context, id, userID uuid.UUID) (*creation.Validation, error) {
	return repository.NewValidationRepository(r.uow.q, r.dbtx).FindByID(ctx, r.dbtx, id, userID)
}
