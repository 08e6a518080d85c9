package reservation

import (
	"errors"
	"strings"
	"time"

	"dish-studio/internal/domain/slot"
	"dish-studio/internal/pkg/daykey"

	"github.com/google/uuid"
)

var (
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	ErrInvalidTTL             = errors.New("reservation ttl must be positive")
	ErrAdRewardRequired       = errors.New("ad slot requires an ad reward")
)

type Reservation struct {
	id             uuid.UUID
	userID         uuid.UUID
	dayKey         daykey.Key
	slotType       slot.Type
	status         Status
	expiresAt      time.Time
	adRewardID     *uuid.UUID
	idempotencyKey string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReservation(
	userID uuid.UUID,
	idempotencyKey string,
	dayKey daykey.Key,
	slotType slot.Type,
	adRewardID *uuid.UUID,
	now time.Time,
	ttl time.Duration,
) (*Reservation, error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey == "" {
		return nil, ErrIdempotencyKeyRequired
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if !slotType.IsValid() {
		return nil, slot.ErrInvalidType
	}
	if slotType == slot.TypeAd && adRewardID == nil {
		return nil, ErrAdRewardRequired
	}

	return &Reservation{
		id:             uuid.New(),
		userID:         userID,
		dayKey:         dayKey,
		slotType:       slotType,
		status:         StatusReserved,
		expiresAt:      now.Add(ttl),
		adRewardID:     adRewardID,
		idempotencyKey: idempotencyKey,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructReservation(
	id, userID uuid.UUID,
	dayKey daykey.Key,
	slotType slot.Type,
	status Status,
	expiresAt time.Time,
	adRewardID *uuid.UUID,
	idempotencyKey string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		userID:         userID,
		dayKey:         dayKey,
		slotType:       slotType,
		status:         status,
		expiresAt:      expiresAt,
		adRewardID:     adRewardID,
		idempotencyKey: idempotencyKey,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// HasExpired is a pure TTL check; it does not look at status.
func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.expiresAt)
}

// IsReclaimable reports whether the TTL lapsed while the slot was still only reserved.
func (r *Reservation) IsReclaimable(now time.Time) bool {
	return r.status == StatusReserved && r.HasExpired(now)
}

func (r *Reservation) ExpiresIn(now time.Time) time.Duration {
	d := r.expiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) UserID() uuid.UUID      { return r.userID }
func (r *Reservation) DayKey() daykey.Key     { return r.dayKey }
func (r *Reservation) SlotType() slot.Type    { return r.slotType }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) ExpiresAt() time.Time   { return r.expiresAt }
func (r *Reservation) AdRewardID() *uuid.UUID { return r.adRewardID }
func (r *Reservation) IdempotencyKey() string { return r.idempotencyKey }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
