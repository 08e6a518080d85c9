package converter

import (
	"dish-studio/internal/domain/adreward"
	"dish-studio/internal/domain/creation"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/pgconv"
)

func RequestToInfra(req *creation.Request) sqlc.CreateCreateRequestParams {
	return sqlc.CreateCreateRequestParams{
		ID:               req.ID(),
		UserID:           req.UserID(),
		ReservationID:    req.ReservationID(),
		ValidationID:     req.ValidationID(),
		IdempotencyKey:   req.IdempotencyKey(),
		Prompt:           req.Prompt(),
		TranslatedPrompt: req.TranslatedPrompt(),
		Status:           req.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(req.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(req.UpdatedAt()),
	}
}

func RequestToDomain(row sqlc.CreateRequests) *creation.Request {
	return creation.ReconstructRequest(
		row.ID,
		row.UserID,
		row.ReservationID,
		row.ValidationID,
		row.IdempotencyKey,
		row.Prompt,
		row.TranslatedPrompt,
		creation.Status(row.Status),
		pgconv.UUIDPtrFromPgtype(row.DishID),
		pgconv.StringPtrFromPgtype(row.ImageUrl),
		pgconv.StringPtrFromPgtype(row.FailureCode),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ValidationToInfra(v *creation.Validation) sqlc.CreatePromptValidationParams {
	return sqlc.CreatePromptValidationParams{
		ID:               v.ID,
		UserID:           v.UserID,
		Prompt:           v.Prompt,
		TranslatedPrompt: v.TranslatedPrompt,
		Decision:         string(v.Decision),
		Reason:           v.Reason,
		CreatedAt:        pgconv.TimeToPgtype(v.CreatedAt),
	}
}

func ValidationToDomain(row sqlc.PromptValidations) *creation.Validation {
	return &creation.Validation{
		ID:               row.ID,
		UserID:           row.UserID,
		Prompt:           row.Prompt,
		TranslatedPrompt: row.TranslatedPrompt,
		Decision:         creation.Decision(row.Decision),
		Reason:           row.Reason,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func DishToInfra(d *creation.Dish) sqlc.CreateDishParams {
	return sqlc.CreateDishParams{
		ID:        d.ID,
		UserID:    d.UserID,
		RequestID: d.RequestID,
		Prompt:    d.Prompt,
		ImageUrl:  d.ImageURL,
		DayKey:    d.DayKey.String(),
		CreatedAt: pgconv.TimeToPgtype(d.CreatedAt),
	}
}

func RewardToInfra(r *adreward.Reward) sqlc.CreateAdRewardParams {
	return sqlc.CreateAdRewardParams{
		ID:        r.ID,
		UserID:    r.UserID,
		Nonce:     r.Nonce,
		Status:    string(r.Status),
		ExpiresAt: pgconv.TimeToPgtype(r.ExpiresAt),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(r.CreatedAt),
	}
}

func RewardToDomain(row sqlc.AdRewards) *adreward.Reward {
	return &adreward.Reward{
		ID:                    row.ID,
		UserID:                row.UserID,
		Nonce:                 row.Nonce,
		Status:                adreward.Status(row.Status),
		ConfirmIdempotencyKey: pgconv.StringPtrFromPgtype(row.ConfirmIdempotencyKey),
		ExpiresAt:             pgconv.TimeFromPgtype(row.ExpiresAt),
		GrantedAt:             pgconv.TimePtrFromPgtype(row.GrantedAt),
		UsedAt:                pgconv.TimePtrFromPgtype(row.UsedAt),
		UsedReservationID:     pgconv.UUIDPtrFromPgtype(row.UsedReservationID),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
