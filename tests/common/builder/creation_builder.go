//go:build unit || e2e

package builder

import (
	"time"

	"dish-studio/internal/domain/creation"
	reqdto "dish-studio/internal/handler/dto/request"
	"dish-studio/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreationBuilder struct {
	RequestID      uuid.UUID
	UserID         uuid.UUID
	ReservationID  uuid.UUID
	ValidationID   uuid.UUID
	IdempotencyKey string
	Status         creation.Status
	DishID         *uuid.UUID
	ImageURL       *string
	FailureCode    *string
	UpdatedAt      time.Time
}

func NewCreationBuilder() *CreationBuilder {
	return &CreationBuilder{
		RequestID:      uuid.New(),
		UserID:         uuid.New(),
		ReservationID:  uuid.New(),
		ValidationID:   uuid.New(),
		IdempotencyKey: "generate-key-0001",
		Status:         creation.StatusGenerating,
		UpdatedAt:      time.Date(2026, 10, 17, 3, 0, 0, 0, time.UTC),
	}
}

func (b *CreationBuilder) With(mutate func(*CreationBuilder)) *CreationBuilder {
	mutate(b)
	return b
}

func (b *CreationBuilder) BuildGenerateRequestDTO() reqdto.GenerateRequest {
	return reqdto.GenerateRequest{
		ReservationID:  b.ReservationID,
		ValidationID:   b.ValidationID,
		IdempotencyKey: b.IdempotencyKey,
	}
}

func (b *CreationBuilder) BuildStatusView() *queries.CreationStatusView {
	return &queries.CreationStatusView{
		RequestID:     b.RequestID,
		UserID:        b.UserID,
		ReservationID: b.ReservationID,
		Status:        b.Status.String(),
		DishID:        b.DishID,
		ImageURL:      b.ImageURL,
		FailureCode:   b.FailureCode,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *CreationBuilder) Done(imageURL string) *CreationBuilder {
	dishID := uuid.New()
	b.Status = creation.StatusDone
	b.DishID = &dishID
	b.ImageURL = &imageURL
	return b
}

func (b *CreationBuilder) Failed(code string) *CreationBuilder {
	b.Status = creation.StatusFailed
	b.FailureCode = &code
	return b
}
