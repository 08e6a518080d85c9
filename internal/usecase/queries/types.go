package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotSummaryView is today's global quota; Personal is set for authenticated callers only.
type SlotSummaryView struct {
	DayKey        string            `json:"day_key"`
	FreeLimit     int32             `json:"free_limit"`
	FreeUsed      int32             `json:"free_used"`
	FreeRemaining int32             `json:"free_remaining"`
	AdLimit       int32             `json:"ad_limit"`
	AdUsed        int32             `json:"ad_used"`
	AdRemaining   int32             `json:"ad_remaining"`
	Personal      *PersonalSlotView `json:"personal,omitempty"`
}

type PersonalSlotView struct {
	FreeDailyLimit             int  `json:"free_daily_limit"`
	ActiveFreeReservationCount int  `json:"active_free_reservation_count"`
	CanUseFreeSlotToday        bool `json:"can_use_free_slot_today"`
	AdDailyLimit               int  `json:"ad_daily_limit"`
	ActiveAdReservationCount   int  `json:"active_ad_reservation_count"`
}

type CreationStatusView struct {
	RequestID     uuid.UUID  `json:"request_id"`
	UserID        uuid.UUID  `json:"user_id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	Status        string     `json:"status"`
	DishID        *uuid.UUID `json:"dish_id,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	FailureCode   *string    `json:"failure_code,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (v *CreationStatusView) IsFailed() bool {
	return v.Status == "FAILED"
}
