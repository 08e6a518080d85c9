package shared

import (
	"context"
	"time"

	"dish-studio/internal/domain/adreward"
	"dish-studio/internal/domain/creation"
	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/domain/slot"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/daykey"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Ledger() SlotLedgerRepository
	Reservations() ReservationRepository
	AdRewards() AdRewardRepository
	Requests() CreateRequestRepository
	Validations() ValidationRepository
	Dishes() DishRepository
	SafetyAudits() SafetyAuditRepository
	DB() sqlc.DBTX
}

type CommandReads interface {
	ReservationByUserAndKey(ctx context.Context, userID uuid.UUID, key string) (*reservation.Reservation, error)
	RequestByUserAndKey(ctx context.Context, userID uuid.UUID, key string) (*creation.Request, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*creation.Request, error)
	ValidationByID(ctx context.Context, id, userID uuid.UUID) (*creation.Validation, error)
}

type SlotLedgerRepository interface {
	Ensure(ctx context.Context, tx sqlc.DBTX, dayKey daykey.Key, freeLimit, adLimit int32) error
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, dayKey daykey.Key) (*slot.Counter, error)
	Adjust(ctx context.Context, tx sqlc.DBTX, dayKey daykey.Key, slotType slot.Type, delta int32) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	FindByUserAndKey(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, key string) (*reservation.Reservation, error)
	CountActive(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, dayKey daykey.Key, slotType slot.Type) (int, error)
	// Transition applies t only when the current status is one of t.From.
	// applied is false (and res nil) when zero rows matched.
	Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, t reservation.Transition) (res *reservation.Reservation, applied bool, err error)
	ListExpiredIDs(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]uuid.UUID, error)
	ListUserExpiredIDs(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, dayKey daykey.Key, now time.Time) ([]uuid.UUID, error)
}

type AdRewardRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, reward *adreward.Reward) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*adreward.Reward, error)
	FindByNonceForUpdate(ctx context.Context, tx sqlc.DBTX, nonce string) (*adreward.Reward, error)
	Grant(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, idempotencyKey string, at time.Time) (bool, error)
	MarkUsed(ctx context.Context, tx sqlc.DBTX, id, reservationID uuid.UUID, at time.Time) (bool, error)
	Regrant(ctx context.Context, tx sqlc.DBTX, id, reservationID uuid.UUID) (bool, error)
}

type CreateRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, req *creation.Request) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*creation.Request, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*creation.Request, error)
	FindByUserAndKey(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, key string) (*creation.Request, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status creation.Status) (bool, error)
	SaveImage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, imageURL string) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, id, dishID uuid.UUID, imageURL string) (bool, error)
	Fail(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, failureCode string) (bool, error)
	RepairDone(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
}

type ValidationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *creation.Validation) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) (*creation.Validation, error)
}

type DishRepository interface {
	// Create writes the dish and its day-score side record.
	Create(ctx context.Context, tx sqlc.DBTX, dish *creation.Dish) error
}

type SafetyAuditRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID, decision creation.Decision, reason, imageURL string) error
}
