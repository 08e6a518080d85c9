package commands

//go:generate mockgen -source=adreward.go -destination=../../../tests/mock/commands/adreward.go -package=mock_commands

import (
	"context"
	"strings"
	"time"

	"dish-studio/internal/domain/adreward"
	"dish-studio/internal/infra"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAdRewardConflict = errs.New("ad reward cannot be confirmed by this request")
	ErrAdRewardExpired  = errs.New("ad reward expired")
	ErrNonceRequired    = errs.New("nonce is required")

	ErrIdempotencyKeyRequired = errs.New("idempotency key is required")
)

type ConfirmRewardInput struct {
	UserID         uuid.UUID
	Nonce          string
	IdempotencyKey string
}

type ConfirmRewardResult struct {
	Reward   *adreward.Reward
	Replayed bool
}

type AdRewardCommands interface {
	Request(ctx context.Context, userID uuid.UUID) (*adreward.Reward, error)
	Confirm(ctx context.Context, in ConfirmRewardInput) (*ConfirmRewardResult, error)
}

type adRewardUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
}

func NewAdRewardCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) AdRewardCommands {
	return &adRewardUseCaseImpl{uow: uow, clock: clk, ttl: cfg.Slot.AdRewardTTL}
}

func (uc *adRewardUseCaseImpl) Request(ctx context.Context, userID uuid.UUID) (*adreward.Reward, error) {
	reward, err := adreward.NewReward(userID, uc.clock.Now(), uc.ttl)
	if err != nil {
		return nil, errs.Wrap(err, "failed to mint ad reward nonce")
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.AdRewards().Create(ctx, tx.DB(), reward)
	})
	if err != nil {
		return nil, err
	}
	return reward, nil
}

// Confirm grants a pending reward once; a replay with the same key returns the granted row.
func (uc *adRewardUseCaseImpl) Confirm(ctx context.Context, in ConfirmRewardInput) (*ConfirmRewardResult, error) {
	nonce := strings.TrimSpace(in.Nonce)
	if nonce == "" {
		return nil, ErrNonceRequired
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" {
		return nil, ErrIdempotencyKeyRequired
	}

	var result *ConfirmRewardResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		reward, err := tx.AdRewards().FindByNonceForUpdate(ctx, tx.DB(), nonce)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAdRewardNotFound
			}
			return err
		}

		replayed, err := reward.CheckConfirmable(in.UserID, key, now)
		if err != nil {
			switch {
			case errs.Is(err, adreward.ErrRewardNotOwned):
				// Hide other users' nonces.
				return ErrAdRewardNotFound
			case errs.Is(err, adreward.ErrRewardExpired):
				return ErrAdRewardExpired
			default:
				return errs.Mark(err, ErrAdRewardConflict)
			}
		}
		if replayed {
			result = &ConfirmRewardResult{Reward: reward, Replayed: true}
			return nil
		}

		ok, err := tx.AdRewards().Grant(ctx, tx.DB(), reward.ID, key, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAdRewardConflict
		}
		reward.Status = adreward.StatusGranted
		reward.ConfirmIdempotencyKey = &key
		reward.GrantedAt = &now
		result = &ConfirmRewardResult{Reward: reward}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
