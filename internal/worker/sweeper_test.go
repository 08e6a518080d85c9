//go:build unit

package worker

import (
	"context"
	"errors"
	"testing"

	"dish-studio/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSweeper struct {
	mock.Mock
}

func (m *MockSweeper) Sweep(ctx context.Context, limit int32) (int, error) {
	args := m.Called(ctx, limit)
	return args.Int(0), args.Error(1)
}

func TestReclaimLoopRunOnce(t *testing.T) {
	s := &MockSweeper{}
	loop := NewReclaimLoop(s, config.NewTestConfig())

	s.On("Sweep", mock.Anything, int32(100)).Return(2, nil).Once()
	assert.Equal(t, 2, loop.RunOnce(context.Background()))

	s.On("Sweep", mock.Anything, int32(100)).Return(1, errors.New("partial")).Once()
	assert.Equal(t, 1, loop.RunOnce(context.Background()))

	s.AssertExpectations(t)
}
