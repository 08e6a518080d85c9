//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"dish-studio/internal/domain/slot"
	"dish-studio/internal/infra"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/daykey"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotReadQueries struct {
	mock.Mock
}

func (m *MockSlotReadQueries) GetDailyCounter(ctx context.Context, db sqlc.DBTX, dayKey string) (sqlc.DailySlotCounters, error) {
	args := m.Called(ctx, db, dayKey)
	return args.Get(0).(sqlc.DailySlotCounters), args.Error(1)
}

func (m *MockSlotReadQueries) CountActiveReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveReservationsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

type MockCreationReadQueries struct {
	mock.Mock
}

func (m *MockCreationReadQueries) GetCreateRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CreateRequests, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.CreateRequests), args.Error(1)
}

func TestCounterByDay(t *testing.T) {
	const day = daykey.Key("2026-10-17")

	tests := []struct {
		name       string
		mockReturn sqlc.DailySlotCounters
		mockError  error
		wantKind   infra.RepositoryErrorKind
		want       *slot.Counter
	}{
		{
			name:       "success",
			mockReturn: sqlc.DailySlotCounters{DayKey: day.String(), FreeLimit: 10, AdLimit: 5, FreeUsed: 4, AdUsed: -1},
			want:       &slot.Counter{DayKey: day, FreeLimit: 10, AdLimit: 5, FreeUsed: 4, AdUsed: -1},
		},
		{
			name:      "missing row (pgx)",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "missing row (database/sql)",
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockSlotReadQueries)
			mockQueries.On("GetDailyCounter", mock.Anything, mock.Anything, day.String()).Return(tt.mockReturn, tt.mockError)

			store := NewSlotReadStore(mockQueries, nil)
			got, err := store.CounterByDay(context.Background(), day)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCountActive(t *testing.T) {
	userID := uuid.New()
	mockQueries := new(MockSlotReadQueries)
	mockQueries.On("CountActiveReservations", mock.Anything, mock.Anything, sqlc.CountActiveReservationsParams{
		UserID:   userID,
		DayKey:   "2026-10-17",
		SlotType: "FREE",
	}).Return(int64(2), nil)

	store := NewSlotReadStore(mockQueries, nil)
	n, err := store.CountActive(context.Background(), userID, "2026-10-17", slot.TypeFree)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	mockQueries.AssertExpectations(t)
}

func TestRequestByID(t *testing.T) {
	id := uuid.New()
	dishID := uuid.New()
	row := sqlc.CreateRequests{
		ID:            id,
		UserID:        uuid.New(),
		ReservationID: uuid.New(),
		Status:        "DONE",
		DishID:        pgtype.UUID{Bytes: dishID, Valid: true},
		ImageUrl:      pgtype.Text{String: "https://cdn.example.com/a.png", Valid: true},
	}

	mockQueries := new(MockCreationReadQueries)
	mockQueries.On("GetCreateRequestByID", mock.Anything, mock.Anything, id).Return(row, nil)

	store := NewCreationReadStore(mockQueries, nil)
	view, err := store.RequestByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "DONE", view.Status)
	require.NotNil(t, view.DishID)
	assert.Equal(t, dishID, *view.DishID)
	require.NotNil(t, view.ImageURL)
	assert.Equal(t, "https://cdn.example.com/a.png", *view.ImageURL)
	assert.Nil(t, view.FailureCode)
	assert.False(t, view.IsFailed())
}
