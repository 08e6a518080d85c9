package repository

import (
	"context"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/infra"
	"dish-studio/internal/infra/repository/converter"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CreateRequestQueries interface {
	CreateCreateRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCreateRequestParams) error
	GetCreateRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CreateRequests, error)
	GetCreateRequestByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CreateRequests, error)
	GetCreateRequestByUserAndKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCreateRequestByUserAndKeyParams) (sqlc.CreateRequests, error)
	UpdateCreateRequestStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCreateRequestStatusParams) (int64, error)
	SaveCreateRequestImage(ctx context.Context, db sqlc.DBTX, arg sqlc.SaveCreateRequestImageParams) (int64, error)
	CompleteCreateRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteCreateRequestParams) (int64, error)
	FailCreateRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.FailCreateRequestParams) (int64, error)
	RepairCreateRequestDone(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CreateRequestRepository struct {
	queries CreateRequestQueries
	db      sqlc.DBTX
}

func NewCreateRequestRepository(queries CreateRequestQueries, db sqlc.DBTX) *CreateRequestRepository {
	return &CreateRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CreateRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *creation.Request) error {
	if err := r.queries.CreateCreateRequest(ctx, tx, converter.RequestToInfra(req)); err != nil {
		return infra.WrapRepoErr("failed to create creation request", err)
	}
	return nil
}

func (r *CreateRequestRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*creation.Request, error) {
	row, err := r.queries.GetCreateRequestByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find creation request", err)
	}
	return converter.RequestToDomain(row), nil
}

func (r *CreateRequestRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*creation.Request, error) {
	row, err := r.queries.GetCreateRequestByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock creation request", err)
	}
	return converter.RequestToDomain(row), nil
}

func (r *CreateRequestRepository) FindByUserAndKey(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, key string) (*creation.Request, error) {
	row, err := r.queries.GetCreateRequestByUserAndKey(ctx, tx, sqlc.GetCreateRequestByUserAndKeyParams{
		UserID:         userID,
		IdempotencyKey: key,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find creation request by idempotency key", err)
	}
	return converter.RequestToDomain(row), nil
}

// The following writes never touch a DONE or FAILED row; false means nothing changed.

func (r *CreateRequestRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status creation.Status) (bool, error) {
	n, err := r.queries.UpdateCreateRequestStatus(ctx, tx, sqlc.UpdateCreateRequestStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update creation request status", err)
	}
	return n == 1, nil
}

func (r *CreateRequestRepository) SaveImage(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, imageURL string) (bool, error) {
	n, err := r.queries.SaveCreateRequestImage(ctx, tx, sqlc.SaveCreateRequestImageParams{
		ID:       id,
		ImageUrl: pgconv.StringToPgtype(imageURL),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to save generated image", err)
	}
	return n == 1, nil
}

func (r *CreateRequestRepository) Complete(ctx context.Context, tx sqlc.DBTX, id, dishID uuid.UUID, imageURL string) (bool, error) {
	n, err := r.queries.CompleteCreateRequest(ctx, tx, sqlc.CompleteCreateRequestParams{
		ID:       id,
		DishID:   pgconv.UUIDToPgtype(dishID),
		ImageUrl: pgconv.StringToPgtype(imageURL),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete creation request", err)
	}
	return n == 1, nil
}

func (r *CreateRequestRepository) Fail(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, failureCode string) (bool, error) {
	n, err := r.queries.FailCreateRequest(ctx, tx, sqlc.FailCreateRequestParams{
		ID:          id,
		FailureCode: pgconv.StringToPgtype(failureCode),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to fail creation request", err)
	}
	return n == 1, nil
}

func (r *CreateRequestRepository) RepairDone(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.RepairCreateRequestDone(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to repair creation request", err)
	}
	return n == 1, nil
}
