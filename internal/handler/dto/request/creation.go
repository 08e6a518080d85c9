package request

import (
	"github.com/google/uuid"
)

type GenerateRequest struct {
	ReservationID  uuid.UUID `json:"reservationId" binding:"required"`
	ValidationID   uuid.UUID `json:"validationId" binding:"required"`
	IdempotencyKey string    `json:"idempotencyKey" binding:"required,idemkey"`
}

type CreationStatusQuery struct {
	RequestID string `form:"requestId" binding:"required,uuid"`
}

// ID is safe to call after binding succeeded.
func (q CreationStatusQuery) ID() uuid.UUID {
	return uuid.MustParse(q.RequestID)
}
