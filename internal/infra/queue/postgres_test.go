//go:build unit

package queue

import (
	"context"
	"testing"
	"time"

	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobQueries struct {
	mock.Mock
}

func (m *MockJobQueries) EnqueueJob(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueJobParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobQueries) ClaimJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimJobsParams) ([]sqlc.Jobs, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Jobs), args.Error(1)
}

func (m *MockJobQueries) ExtendJobLease(ctx context.Context, db sqlc.DBTX, arg sqlc.ExtendJobLeaseParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobQueries) CompleteJob(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	return m.Called(ctx, db, id).Error(0)
}

func (m *MockJobQueries) RetryJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RetryJobParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockJobQueries) FailJob(ctx context.Context, db sqlc.DBTX, arg sqlc.FailJobParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func newTestPostgresQueue(q JobQueries) (*PostgresQueue, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC))
	return NewPostgresQueue(q, nil, clk, config.NewTestConfig()), clk
}

func TestPostgresQueueEnqueue(t *testing.T) {
	requestID := uuid.New()

	tests := []struct {
		name      string
		rows      int64
		mockError error
		wantErr   error
	}{
		{name: "inserted", rows: 1},
		{name: "deduplicated is not an error", rows: 0},
		{name: "database down", mockError: assert.AnError, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mq := new(MockJobQueries)
			q, clk := newTestPostgresQueue(mq)
			now := clk.Now()

			mq.On("EnqueueJob", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.EnqueueJobParams) bool {
				return p.Name == "dish-generate" &&
					p.SingletonKey == requestID.String() &&
					p.RunAt.Time.Equal(now) &&
					p.DedupCutoff.Time.Equal(now.Add(-24*time.Hour))
			})).Return(tt.rows, tt.mockError)

			err := q.Enqueue(context.Background(), requestID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mq.AssertExpectations(t)
		})
	}
}

func TestPostgresQueueReceiveBuriesMalformedPayload(t *testing.T) {
	mq := new(MockJobQueries)
	q, _ := newTestPostgresQueue(mq)

	good := uuid.New()
	goodJobID := uuid.New()
	badJobID := uuid.New()
	body, err := encodePayload(good)
	require.NoError(t, err)

	mq.On("ClaimJobs", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ClaimJobsParams) bool {
		return p.BatchSize == 4 && p.Name == "dish-generate"
	})).Return([]sqlc.Jobs{
		{ID: goodJobID, Payload: body, Attempt: 2},
		{ID: badJobID, Payload: []byte(`{"requestId":""}`), Attempt: 1},
	}, nil)
	mq.On("FailJob", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.FailJobParams) bool {
		return p.ID == badJobID && p.LastError.Valid
	})).Return(nil)

	jobs, err := q.Receive(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, Job{Handle: goodJobID.String(), RequestID: good, Attempt: 2}, jobs[0])
	mq.AssertExpectations(t)
}

func TestPostgresQueueExtend(t *testing.T) {
	jobID := uuid.New()

	tests := []struct {
		name      string
		rows      int64
		mockError error
		wantOwned bool
		wantErr   error
	}{
		{name: "current delivery renews its lease", rows: 1, wantOwned: true},
		{name: "job reclaimed by another worker is stale", rows: 0, wantOwned: false},
		{name: "database down", mockError: assert.AnError, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mq := new(MockJobQueries)
			q, clk := newTestPostgresQueue(mq)

			mq.On("ExtendJobLease", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ExtendJobLeaseParams) bool {
				return p.ID == jobID &&
					p.Attempt == 2 &&
					p.LockedUntil.Time.Equal(clk.Now().Add(time.Minute))
			})).Return(tt.rows, tt.mockError)

			owned, err := q.Extend(context.Background(), Job{Handle: jobID.String(), Attempt: 2})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOwned, owned)
			mq.AssertExpectations(t)
		})
	}
}

func TestPostgresQueueRetrySchedulesRunAt(t *testing.T) {
	mq := new(MockJobQueries)
	q, clk := newTestPostgresQueue(mq)
	jobID := uuid.New()

	mq.On("RetryJob", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.RetryJobParams) bool {
		return p.ID == jobID && p.RunAt.Time.Equal(clk.Now().Add(30*time.Second)) && p.LastError.String == "boom"
	})).Return(nil)

	require.NoError(t, q.Retry(context.Background(), Job{Handle: jobID.String()}, 30*time.Second, errString("boom")))
	mq.AssertExpectations(t)
}

func TestPostgresQueueAckRejectsBadHandle(t *testing.T) {
	q, _ := newTestPostgresQueue(new(MockJobQueries))
	assert.Error(t, q.Ack(context.Background(), Job{Handle: "not-a-uuid"}))
}

type errString string

func (e errString) Error() string { return string(e) }
