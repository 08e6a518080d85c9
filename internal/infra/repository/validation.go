package repository

import (
	"context"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/infra"
	"dish-studio/internal/infra/repository/converter"
	sqlc "dish-studio/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ValidationQueries interface {
	CreatePromptValidation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePromptValidationParams) error
	GetPromptValidation(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPromptValidationParams) (sqlc.PromptValidations, error)
}

type ValidationRepository struct {
	queries ValidationQueries
	db      sqlc.DBTX
}

func NewValidationRepository(queries ValidationQueries, db sqlc.DBTX) *ValidationRepository {
	return &ValidationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ValidationRepository) Create(ctx context.Context, tx sqlc.DBTX, v *creation.Validation) error {
	if err := r.queries.CreatePromptValidation(ctx, tx, converter.ValidationToInfra(v)); err != nil {
		return infra.WrapRepoErr("failed to store prompt validation", err)
	}
	return nil
}

// FindByID scopes the lookup to userID; another user's validation reads as not found.
func (r *ValidationRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) (*creation.Validation, error) {
	row, err := r.queries.GetPromptValidation(ctx, tx, sqlc.GetPromptValidationParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find prompt validation", err)
	}
	return converter.ValidationToDomain(row), nil
}
