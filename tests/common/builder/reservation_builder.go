//go:build unit || e2e

package builder

import (
	"time"

	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/domain/slot"
	"dish-studio/internal/pkg/daykey"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	DayKey         daykey.Key
	SlotType       slot.Type
	Status         reservation.Status
	ExpiresAt      time.Time
	AdRewardID     *uuid.UUID
	IdempotencyKey string
	CreatedAt      time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 10, 17, 3, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		DayKey:         "2026-10-17",
		SlotType:       slot.TypeFree,
		Status:         reservation.StatusReserved,
		ExpiresAt:      now.Add(5 * time.Minute),
		IdempotencyKey: "reserve-key-0001",
		CreatedAt:      now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.UserID, b.DayKey, b.SlotType, b.Status,
		b.ExpiresAt, b.AdRewardID, b.IdempotencyKey,
		b.CreatedAt, b.CreatedAt,
	)
}
