package response

import (
	"time"

	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/usecase/queries"
)

type ReserveSlotResponse struct {
	OK               bool   `json:"ok"`
	SlotType         string `json:"slotType"`
	ReservationID    string `json:"reservationId"`
	Status           string `json:"status"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
	Replayed         bool   `json:"replayed"`
}

func FromReservation(res *reservation.Reservation, replayed bool, now time.Time) *ReserveSlotResponse {
	return &ReserveSlotResponse{
		OK:               true,
		SlotType:         res.SlotType().String(),
		ReservationID:    res.ID().String(),
		Status:           res.Status().String(),
		ExpiresInSeconds: int64(res.ExpiresIn(now).Seconds()),
		Replayed:         replayed,
	}
}

type CancelSlotResponse struct {
	OK            bool   `json:"ok"`
	ReservationID string `json:"reservationId"`
	Status        string `json:"status"`
}

func FromCancelled(res *reservation.Reservation) *CancelSlotResponse {
	return &CancelSlotResponse{
		OK:            true,
		ReservationID: res.ID().String(),
		Status:        res.Status().String(),
	}
}

type SlotSummaryResponse struct {
	OK            bool                  `json:"ok"`
	DayKey        string                `json:"dayKey"`
	FreeLimit     int32                 `json:"freeLimit"`
	FreeUsed      int32                 `json:"freeUsed"`
	FreeRemaining int32                 `json:"freeRemaining"`
	AdLimit       int32                 `json:"adLimit"`
	AdUsed        int32                 `json:"adUsed"`
	AdRemaining   int32                 `json:"adRemaining"`
	Personal      *PersonalSlotResponse `json:"personal,omitempty"`
}

type PersonalSlotResponse struct {
	FreeDailyLimit             int  `json:"freeDailyLimit"`
	ActiveFreeReservationCount int  `json:"activeFreeReservationCount"`
	CanUseFreeSlotToday        bool `json:"canUseFreeSlotToday"`
	AdDailyLimit               int  `json:"adDailyLimit"`
	ActiveAdReservationCount   int  `json:"activeAdReservationCount"`
}

func FromSlotSummary(v *queries.SlotSummaryView) *SlotSummaryResponse {
	res := &SlotSummaryResponse{
		OK:            true,
		DayKey:        v.DayKey,
		FreeLimit:     v.FreeLimit,
		FreeUsed:      v.FreeUsed,
		FreeRemaining: v.FreeRemaining,
		AdLimit:       v.AdLimit,
		AdUsed:        v.AdUsed,
		AdRemaining:   v.AdRemaining,
	}
	if p := v.Personal; p != nil {
		res.Personal = &PersonalSlotResponse{
			FreeDailyLimit:             p.FreeDailyLimit,
			ActiveFreeReservationCount: p.ActiveFreeReservationCount,
			CanUseFreeSlotToday:        p.CanUseFreeSlotToday,
			AdDailyLimit:               p.AdDailyLimit,
			ActiveAdReservationCount:   p.ActiveAdReservationCount,
		}
	}
	return res
}
