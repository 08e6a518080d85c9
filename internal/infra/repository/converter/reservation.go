package converter

import (
	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/domain/slot"
	sqlc "dish-studio/internal/infra/sqlc/generated"
	"dish-studio/internal/pkg/daykey"
	"dish-studio/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:             res.ID(),
		UserID:         res.UserID(),
		DayKey:         res.DayKey().String(),
		SlotType:       res.SlotType().String(),
		Status:         res.Status().String(),
		ExpiresAt:      pgconv.TimeToPgtype(res.ExpiresAt()),
		AdRewardID:     pgconv.UUIDPtrToPgtype(res.AdRewardID()),
		IdempotencyKey: res.IdempotencyKey(),
		CreatedAt:      pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToDomain(row sqlc.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		daykey.Key(row.DayKey),
		slot.Type(row.SlotType),
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.UUIDPtrFromPgtype(row.AdRewardID),
		row.IdempotencyKey,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func CounterToDomain(row sqlc.DailySlotCounters) *slot.Counter {
	return &slot.Counter{
		DayKey:    daykey.Key(row.DayKey),
		FreeLimit: row.FreeLimit,
		AdLimit:   row.AdLimit,
		FreeUsed:  row.FreeUsed,
		AdUsed:    row.AdUsed,
	}
}
