package queries

//go:generate mockgen -source=creation.go -destination=../../../tests/mock/queries/creation.go -package=mock_queries

import (
	"context"

	"dish-studio/internal/infra"
	"dish-studio/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCreationNotFound = errs.New("creation request not found")

type CreationReadStore interface {
	RequestByID(ctx context.Context, id uuid.UUID) (*CreationStatusView, error)
}

type CreationQueries interface {
	Status(ctx context.Context, userID, requestID uuid.UUID) (*CreationStatusView, error)
}

type creationQueriesImpl struct {
	readStore CreationReadStore
}

func NewCreationQueries(readStore CreationReadStore) CreationQueries {
	return &creationQueriesImpl{readStore: readStore}
}

// Status hides other users' requests behind not found.
func (q *creationQueriesImpl) Status(ctx context.Context, userID, requestID uuid.UUID) (*CreationStatusView, error) {
	view, err := q.readStore.RequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCreationNotFound
		}
		return nil, err
	}
	if view.UserID != userID {
		return nil, ErrCreationNotFound
	}
	return view, nil
}
