package commands

//go:generate mockgen -source=prompt.go -destination=../../../tests/mock/commands/prompt.go -package=mock_commands

import (
	"context"
	"log/slog"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrModerationUnavailable = errs.New("moderation provider unavailable")

type Moderator interface {
	Moderate(ctx context.Context, prompt string) (creation.Moderation, error)
}

type PromptCommands interface {
	Validate(ctx context.Context, userID uuid.UUID, prompt string) (*creation.Validation, error)
}

type promptUseCaseImpl struct {
	uow       shared.UnitOfWork
	moderator Moderator
	clock     clock.Clock
}

func NewPromptCommands(uow shared.UnitOfWork, moderator Moderator, clk clock.Clock) PromptCommands {
	return &promptUseCaseImpl{uow: uow, moderator: moderator, clock: clk}
}

// Validate moderates before any slot is spent. BLOCK is stored too, so a
// generate call with that validation id fails with a precise reason.
func (uc *promptUseCaseImpl) Validate(ctx context.Context, userID uuid.UUID, prompt string) (*creation.Validation, error) {
	normalized, err := creation.NormalizePrompt(prompt)
	if err != nil {
		return nil, err
	}

	result, err := uc.moderator.Moderate(ctx, normalized)
	if err != nil {
		slog.WarnContext(ctx, "moderation call failed", "user_id", userID, "error", err)
		return nil, errs.Mark(err, ErrModerationUnavailable)
	}

	v := &creation.Validation{
		ID:               uuid.New(),
		UserID:           userID,
		Prompt:           normalized,
		TranslatedPrompt: result.TranslatedPrompt,
		Decision:         result.Decision,
		Reason:           result.Reason,
		CreatedAt:        uc.clock.Now(),
	}
	if v.Decision != creation.DecisionAllow {
		v.Decision = creation.DecisionBlock
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Validations().Create(ctx, tx.DB(), v)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}
