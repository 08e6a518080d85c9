package repository

import (
	"context"
	"time"

	"dish-studio/internal/domain/adreward"
	"dish-studio/internal/infra"
	"dish-studio/internal/infra/repository/converter"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AdRewardQueries interface {
	CreateAdReward(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAdRewardParams) error
	GetAdRewardByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AdRewards, error)
	GetAdRewardByNonceForUpdate(ctx context.Context, db sqlc.DBTX, nonce string) (sqlc.AdRewards, error)
	GrantAdReward(ctx context.Context, db sqlc.DBTX, arg sqlc.GrantAdRewardParams) (int64, error)
	MarkAdRewardUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkAdRewardUsedParams) (int64, error)
	RegrantAdReward(ctx context.Context, db sqlc.DBTX, arg sqlc.RegrantAdRewardParams) (int64, error)
}

type AdRewardRepository struct {
	queries AdRewardQueries
	db      sqlc.DBTX
}

func NewAdRewardRepository(queries AdRewardQueries, db sqlc.DBTX) *AdRewardRepository {
	return &AdRewardRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AdRewardRepository) Create(ctx context.Context, tx sqlc.DBTX, reward *adreward.Reward) error {
	if err := r.queries.CreateAdReward(ctx, tx, converter.RewardToInfra(reward)); err != nil {
		return infra.WrapRepoErr("failed to create ad reward", err)
	}
	return nil
}

func (r *AdRewardRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*adreward.Reward, error) {
	row, err := r.queries.GetAdRewardByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock ad reward", err)
	}
	return converter.RewardToDomain(row), nil
}

func (r *AdRewardRepository) FindByNonceForUpdate(ctx context.Context, tx sqlc.DBTX, nonce string) (*adreward.Reward, error) {
	row, err := r.queries.GetAdRewardByNonceForUpdate(ctx, tx, nonce)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock ad reward by nonce", err)
	}
	return converter.RewardToDomain(row), nil
}

func (r *AdRewardRepository) Grant(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, idempotencyKey string, at time.Time) (bool, error) {
	n, err := r.queries.GrantAdReward(ctx, tx, sqlc.GrantAdRewardParams{
		ID:                    id,
		ConfirmIdempotencyKey: pgconv.StringToPgtype(idempotencyKey),
		GrantedAt:             pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to grant ad reward", err)
	}
	return n == 1, nil
}

func (r *AdRewardRepository) MarkUsed(ctx context.Context, tx sqlc.DBTX, id, reservationID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.MarkAdRewardUsed(ctx, tx, sqlc.MarkAdRewardUsedParams{
		ID:                id,
		UsedAt:            pgconv.TimeToPgtype(at),
		UsedReservationID: pgconv.UUIDToPgtype(reservationID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark ad reward used", err)
	}
	return n == 1, nil
}

// Regrant only clears usage recorded for reservationID, so a reward reused elsewhere stays spent.
func (r *AdRewardRepository) Regrant(ctx context.Context, tx sqlc.DBTX, id, reservationID uuid.UUID) (bool, error) {
	n, err := r.queries.RegrantAdReward(ctx, tx, sqlc.RegrantAdRewardParams{
		ID:                id,
		UsedReservationID: pgconv.UUIDToPgtype(reservationID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to regrant ad reward", err)
	}
	return n == 1, nil
}
