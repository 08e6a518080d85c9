//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"dish-studio/internal/domain/reservation"
	"dish-studio/internal/domain/slot"
	"dish-studio/internal/pkg/daykey"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func TestNewReservation(t *testing.T) {
	userID := uuid.New()
	rewardID := uuid.New()

	testCases := []struct {
		name       string
		key        string
		slotType   slot.Type
		adRewardID *uuid.UUID
		ttl        time.Duration
		errIs      error
	}{
		{name: "free slot", key: "k-1", slotType: slot.TypeFree, ttl: 5 * time.Minute},
		{name: "ad slot with reward", key: "k-2", slotType: slot.TypeAd, adRewardID: &rewardID, ttl: 5 * time.Minute},
		{name: "blank key", key: "   ", slotType: slot.TypeFree, ttl: time.Minute, errIs: reservation.ErrIdempotencyKeyRequired},
		{name: "zero ttl", key: "k-3", slotType: slot.TypeFree, errIs: reservation.ErrInvalidTTL},
		{name: "unknown slot type", key: "k-4", slotType: slot.Type("VIP"), ttl: time.Minute, errIs: slot.ErrInvalidType},
		{name: "ad slot without reward", key: "k-5", slotType: slot.TypeAd, ttl: time.Minute, errIs: reservation.ErrAdRewardRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := reservation.NewReservation(userID, tc.key, "2026-10-17", tc.slotType, tc.adRewardID, now, tc.ttl)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, res.ID())
			assert.Equal(t, reservation.StatusReserved, res.Status())
			assert.Equal(t, now.Add(tc.ttl), res.ExpiresAt())
			assert.Equal(t, daykey.Key("2026-10-17"), res.DayKey())
		})
	}
}

func TestReservationExpiry(t *testing.T) {
	res := reservation.ReconstructReservation(
		uuid.New(), uuid.New(), "2026-10-17", slot.TypeFree, reservation.StatusReserved,
		now, nil, "k", now.Add(-5*time.Minute), now.Add(-5*time.Minute),
	)

	assert.False(t, res.HasExpired(now), "expiry is strictly after expiresAt")
	assert.True(t, res.HasExpired(now.Add(time.Nanosecond)))
	assert.True(t, res.IsReclaimable(now.Add(time.Second)))
	assert.Equal(t, time.Duration(0), res.ExpiresIn(now.Add(time.Hour)))

	confirmed := reservation.ReconstructReservation(
		uuid.New(), uuid.New(), "2026-10-17", slot.TypeFree, reservation.StatusConfirmed,
		now, nil, "k", now, now,
	)
	assert.True(t, confirmed.HasExpired(now.Add(time.Second)))
	assert.False(t, confirmed.IsReclaimable(now.Add(time.Second)), "confirmed slots are never reclaimed")
}

func TestTransitions(t *testing.T) {
	testCases := []struct {
		transition reservation.Transition
		accepts    []reservation.Status
		rejects    []reservation.Status
		releases   bool
	}{
		{
			transition: reservation.Confirm,
			accepts:    []reservation.Status{reservation.StatusReserved},
			rejects:    []reservation.Status{reservation.StatusConfirmed, reservation.StatusExpired, reservation.StatusFailed, reservation.StatusCancelled},
		},
		{
			transition: reservation.Cancel,
			accepts:    []reservation.Status{reservation.StatusReserved},
			rejects:    []reservation.Status{reservation.StatusConfirmed, reservation.StatusExpired, reservation.StatusFailed, reservation.StatusCancelled},
			releases:   true,
		},
		{
			transition: reservation.Reclaim,
			accepts:    []reservation.Status{reservation.StatusReserved},
			rejects:    []reservation.Status{reservation.StatusConfirmed, reservation.StatusExpired, reservation.StatusFailed, reservation.StatusCancelled},
			releases:   true,
		},
		{
			transition: reservation.MarkFailed,
			accepts:    []reservation.Status{reservation.StatusReserved, reservation.StatusConfirmed},
			rejects:    []reservation.Status{reservation.StatusExpired, reservation.StatusFailed, reservation.StatusCancelled},
			releases:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.transition.Name, func(t *testing.T) {
			for _, s := range tc.accepts {
				assert.True(t, tc.transition.Accepts(s), "%s should accept %s", tc.transition.Name, s)
			}
			for _, s := range tc.rejects {
				assert.False(t, tc.transition.Accepts(s), "%s should reject %s", tc.transition.Name, s)
			}
			assert.Equal(t, tc.releases, tc.transition.Releases)
			assert.Len(t, tc.transition.FromStrings(), len(tc.accepts))
		})
	}
}

func TestStatusHoldsQuota(t *testing.T) {
	assert.True(t, reservation.StatusReserved.HoldsQuota())
	assert.True(t, reservation.StatusConfirmed.HoldsQuota())
	assert.False(t, reservation.StatusCancelled.HoldsQuota())
	assert.False(t, reservation.StatusExpired.HoldsQuota())
	assert.False(t, reservation.StatusFailed.HoldsQuota())
}
