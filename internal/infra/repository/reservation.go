package repository

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=mock_repository

import (
	"context"
	"time"

	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/domain/slot"
	"dish-studio/internal/infra"
	"dish-studio/internal/infra/repository/converter"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/daykey"
	"dish-studio/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationByUserAndKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationByUserAndKeyParams) (sqlc.Reservations, error)
	CountActiveReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveReservationsParams) (int64, error)
	TransitionReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionReservationStatusParams) (sqlc.Reservations, error)
	ListExpiredReservationIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExpiredReservationIDsParams) ([]uuid.UUID, error)
	ListUserExpiredReservationIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUserExpiredReservationIDsParams) ([]uuid.UUID, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params := converter.ReservationToInfra(res)

	if _, err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return converter.ReservationToDomain(row), nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationToDomain(row), nil
}

func (r *ReservationRepository) FindByUserAndKey(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, key string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByUserAndKey(ctx, tx, sqlc.GetReservationByUserAndKeyParams{
		UserID:         userID,
		IdempotencyKey: key,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by idempotency key", err)
	}
	return converter.ReservationToDomain(row), nil
}

func (r *ReservationRepository) CountActive(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, dayKey daykey.Key, slotType slot.Type) (int, error) {
	n, err := r.queries.CountActiveReservations(ctx, tx, sqlc.CountActiveReservationsParams{
		UserID:   userID,
		DayKey:   dayKey.String(),
		SlotType: slotType.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return int(n), nil
}

func (r *ReservationRepository) Transition(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, t reservation.Transition) (*reservation.Reservation, bool, error) {
	row, err := r.queries.TransitionReservationStatus(ctx, tx, sqlc.TransitionReservationStatusParams{
		ToStatus:     t.To.String(),
		ID:           id,
		FromStatuses: t.FromStrings(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to "+t.Name+" reservation", err)
	}
	return converter.ReservationToDomain(row), true, nil
}

func (r *ReservationRepository) ListExpiredIDs(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListExpiredReservationIDs(ctx, tx, sqlc.ListExpiredReservationIDsParams{
		ExpiresAt: pgconv.TimeToPgtype(now),
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired reservations", err)
	}
	return ids, nil
}

func (r *ReservationRepository) ListUserExpiredIDs(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, dayKey daykey.Key, now time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListUserExpiredReservationIDs(ctx, tx, sqlc.ListUserExpiredReservationIDsParams{
		UserID:    userID,
		DayKey:    dayKey.String(),
		ExpiresAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user expired reservations", err)
	}
	return ids, nil
}
