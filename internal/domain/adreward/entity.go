package adreward

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRewardExpired     = errors.New("ad reward expired")
	ErrRewardUsed        = errors.New("ad reward already used")
	ErrRewardNotOwned    = errors.New("ad reward belongs to another user")
	ErrRewardKeyMismatch = errors.New("ad reward confirmed with a different idempotency key")
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusGranted Status = "GRANTED"
)

type Reward struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Nonce                 string
	Status                Status
	ConfirmIdempotencyKey *string
	ExpiresAt             time.Time
	GrantedAt             *time.Time
	UsedAt                *time.Time
	UsedReservationID     *uuid.UUID
	CreatedAt             time.Time
}

func NewReward(userID uuid.UUID, now time.Time, ttl time.Duration) (*Reward, error) {
	nonce, err := newNonce()
	if err != nil {
		return nil, err
	}
	return &Reward{
		ID:        uuid.New(),
		UserID:    userID,
		Nonce:     nonce,
		Status:    StatusPending,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

// CheckUsable validates that the reward may mint an AD reservation for userID.
// A GRANTED reward stays usable past expiresAt; the TTL bounds confirmation only.
func (r *Reward) CheckUsable(userID uuid.UUID, now time.Time) error {
	if r.UserID != userID {
		return ErrRewardNotOwned
	}
	if r.UsedAt != nil {
		return ErrRewardUsed
	}
	if r.Status == StatusPending && now.After(r.ExpiresAt) {
		return ErrRewardExpired
	}
	return nil
}

// CheckConfirmable returns (alreadyConfirmed, error). A replay with the same key is not an error.
func (r *Reward) CheckConfirmable(userID uuid.UUID, idempotencyKey string, now time.Time) (bool, error) {
	if r.UserID != userID {
		return false, ErrRewardNotOwned
	}
	if r.Status == StatusGranted {
		if r.ConfirmIdempotencyKey != nil && *r.ConfirmIdempotencyKey == idempotencyKey {
			return true, nil
		}
		return false, ErrRewardKeyMismatch
	}
	if now.After(r.ExpiresAt) {
		return false, ErrRewardExpired
	}
	return false, nil
}

func newNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
