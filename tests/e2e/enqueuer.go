//go:build e2e

package e2e

import (
	"context"
	"sync/atomic"

	"dish-studio/internal/infra/queue"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/usecase/commands"

	"github.com/google/uuid"
)

// SwitchableEnqueuer forwards to the real queue until it is switched down,
// then rejects every submit the way an unreachable broker would.
type SwitchableEnqueuer struct {
	next commands.Enqueuer
	down atomic.Bool
}

func NewSwitchableEnqueuer(next commands.Enqueuer) *SwitchableEnqueuer {
	return &SwitchableEnqueuer{next: next}
}

func (e *SwitchableEnqueuer) SetDown(down bool) { e.down.Store(down) }

func (e *SwitchableEnqueuer) Enqueue(ctx context.Context, requestID uuid.UUID) error {
	if e.down.Load() {
		return errs.Mark(errs.New("broker unreachable"), queue.ErrUnavailable)
	}
	return e.next.Enqueue(ctx, requestID)
}
