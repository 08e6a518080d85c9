package request

import (
	"github.com/google/uuid"
)

type ReserveSlotRequest struct {
	IdempotencyKey string     `json:"idempotencyKey" binding:"required,idemkey"`
	AdRewardID     *uuid.UUID `json:"adRewardId,omitempty"`
}

type CancelSlotRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
}
