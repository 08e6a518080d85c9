package commands

//go:generate mockgen -source=creation.go -destination=../../../tests/mock/commands/creation.go -package=mock_commands

import (
	"context"
	"log/slog"
	"strings"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/infra"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/pkg/metrics"
	"dish-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrValidationNotFound  = errs.New("prompt validation not found")
	ErrPromptBlocked       = errs.New("prompt was blocked by moderation")
	ErrIdempotencyConflict = errs.New("idempotency key already used for another reservation")
	ErrReservationExpired  = errs.New("reservation expired")
	ErrReservationFailed   = errs.New("reservation is not in a usable state")
	ErrQueueUnavailable    = errs.New("job queue unavailable")
)

// Enqueuer submits one pipeline job per request id; duplicates inside the
// dedup window are absorbed by the queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, requestID uuid.UUID) error
}

type GenerateInput struct {
	UserID         uuid.UUID
	ReservationID  uuid.UUID
	ValidationID   uuid.UUID
	IdempotencyKey string
}

type GenerateResult struct {
	RequestID uuid.UUID
	Status    creation.Status
	Replayed  bool
}

type CreationCommands interface {
	Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error)
}

type creationUseCaseImpl struct {
	uow      shared.UnitOfWork
	recovery *Recovery
	queue    Enqueuer
	clock    clock.Clock
	metrics  *metrics.Metrics
}

func NewCreationCommands(uow shared.UnitOfWork, recovery *Recovery, queue Enqueuer, clk clock.Clock, m *metrics.Metrics) CreationCommands {
	return &creationUseCaseImpl{uow: uow, recovery: recovery, queue: queue, clock: clk, metrics: m}
}

func (uc *creationUseCaseImpl) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" {
		return nil, ErrIdempotencyKeyRequired
	}
	in.IdempotencyKey = key

	validation, err := uc.uow.CommandReads().ValidationByID(ctx, in.ValidationID, in.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrValidationNotFound
		}
		return nil, err
	}
	if !validation.Decision.IsAllowed() {
		return nil, ErrPromptBlocked
	}

	var (
		result    *GenerateResult
		expired   bool
		reclaimed bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, expired, reclaimed = nil, false, false

		existing, err := tx.Requests().FindByUserAndKey(ctx, tx.DB(), in.UserID, key)
		if err == nil {
			result, err = replayResult(existing, in)
			return err
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), in.ReservationID)
		if err != nil {
			return mapReservationErr(err)
		}
		if res.UserID() != in.UserID {
			return ErrReservationNotFound
		}

		if res.Status() == reservation.StatusExpired {
			expired = true
			return nil
		}
		if res.Status() == reservation.StatusReserved && uc.recovery.HasReservationExpired(res) {
			// Commit the reclaim, then report expiry after the transaction.
			_, reclaimed, err = uc.recovery.ReclaimTx(ctx, tx, res.ID())
			if err != nil {
				return err
			}
			expired = true
			return nil
		}
		if res.Status() != reservation.StatusReserved {
			// A same-key submit may have committed while we waited on the lock.
			existing, err := tx.Requests().FindByUserAndKey(ctx, tx.DB(), in.UserID, key)
			if err == nil {
				result, err = replayResult(existing, in)
				return err
			}
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			return ErrReservationFailed
		}

		if _, applied, err := tx.Reservations().Transition(ctx, tx.DB(), res.ID(), reservation.Confirm); err != nil {
			return err
		} else if !applied {
			return ErrReservationFailed
		}

		req, err := creation.NewRequest(
			in.UserID, res.ID(), validation.ID,
			key, validation.Prompt, validation.TranslatedPrompt,
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		if err := tx.Requests().Create(ctx, tx.DB(), req); err != nil {
			return err
		}
		result = &GenerateResult{RequestID: req.ID(), Status: req.Status()}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uc.replayAfterRace(ctx, in)
		}
		return nil, err
	}
	if expired {
		if reclaimed {
			uc.metrics.ObserveReclaimed(1)
		}
		return nil, ErrReservationExpired
	}

	if err := uc.submit(ctx, result, in.ReservationID); err != nil {
		return nil, err
	}
	return result, nil
}

// A concurrent submit with the same key inserted first; resolve against its row.
func (uc *creationUseCaseImpl) replayAfterRace(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	existing, err := uc.uow.CommandReads().RequestByUserAndKey(ctx, in.UserID, in.IdempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// reservation_id unique: another key already bound this reservation.
			return nil, ErrReservationFailed
		}
		return nil, err
	}
	result, err := replayResult(existing, in)
	if err != nil {
		return nil, err
	}
	if err := uc.submit(ctx, result, in.ReservationID); err != nil {
		return nil, err
	}
	return result, nil
}

// submit enqueues after commit. Only a fresh request is compensated on
// failure; a replayed one may still have a live job from the first submit.
func (uc *creationUseCaseImpl) submit(ctx context.Context, result *GenerateResult, reservationID uuid.UUID) error {
	if result.Replayed && result.Status.IsTerminal() {
		return nil
	}
	err := uc.queue.Enqueue(ctx, result.RequestID)
	if err == nil {
		return nil
	}

	slog.ErrorContext(ctx, "enqueue failed",
		"request_id", result.RequestID,
		"replayed", result.Replayed,
		"error", err,
	)
	if !result.Replayed {
		uc.compensateEnqueueFailure(ctx, result.RequestID, reservationID)
	}
	return errs.Mark(err, ErrQueueUnavailable)
}

func (uc *creationUseCaseImpl) compensateEnqueueFailure(ctx context.Context, requestID, reservationID uuid.UUID) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Requests().Fail(ctx, tx.DB(), requestID, creation.FailureQueueUnavailable)
		if err != nil || !ok {
			return err
		}
		_, _, err = uc.recovery.MarkFailedTx(ctx, tx, reservationID)
		return err
	})
	if err != nil {
		// The sweep cannot release a CONFIRMED slot; this needs an operator.
		slog.ErrorContext(ctx, "enqueue compensation failed",
			"request_id", requestID,
			"reservation_id", reservationID,
			"error", err,
		)
	}
}

func replayResult(existing *creation.Request, in GenerateInput) (*GenerateResult, error) {
	if existing.ReservationID() != in.ReservationID {
		return nil, ErrIdempotencyConflict
	}
	return &GenerateResult{RequestID: existing.ID(), Status: existing.Status(), Replayed: true}, nil
}
