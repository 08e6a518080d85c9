package repository

import (
	"context"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/infra"
	sqlc "dish-studio/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SafetyAuditQueries interface {
	CreateSafetyAuditLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSafetyAuditLogParams) error
}

type SafetyAuditRepository struct {
	queries SafetyAuditQueries
	db      sqlc.DBTX
}

func NewSafetyAuditRepository(queries SafetyAuditQueries, db sqlc.DBTX) *SafetyAuditRepository {
	return &SafetyAuditRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SafetyAuditRepository) Record(ctx context.Context, tx sqlc.DBTX, requestID uuid.UUID, decision creation.Decision, reason, imageURL string) error {
	err := r.queries.CreateSafetyAuditLog(ctx, tx, sqlc.CreateSafetyAuditLogParams{
		RequestID: requestID,
		Decision:  string(decision),
		Reason:    reason,
		ImageUrl:  imageURL,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record safety audit", err)
	}
	return nil
}
