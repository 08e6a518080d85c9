package readstore

import (
	"context"

	"dish-studio/internal/infra"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/pgconv"
	"dish-studio/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreationReadQueries interface {
	GetCreateRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CreateRequests, error)
}

type CreationReadStore struct {
	queries CreationReadQueries
	db      sqlc.DBTX
}

func NewCreationReadStore(queries CreationReadQueries, db sqlc.DBTX) *CreationReadStore {
	return &CreationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CreationReadStore) RequestByID(ctx context.Context, id uuid.UUID) (*queries.CreationStatusView, error) {
	row, err := r.queries.GetCreateRequestByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read creation request", err)
	}
	return toCreationStatusView(row), nil
}

func toCreationStatusView(row sqlc.CreateRequests) *queries.CreationStatusView {
	return &queries.CreationStatusView{
		RequestID:     row.ID,
		UserID:        row.UserID,
		ReservationID: row.ReservationID,
		Status:        row.Status,
		DishID:        pgconv.UUIDPtrFromPgtype(row.DishID),
		ImageURL:      pgconv.StringPtrFromPgtype(row.ImageUrl),
		FailureCode:   pgconv.StringPtrFromPgtype(row.FailureCode),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
