package creation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPrompt            = errors.New("prompt is empty")
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
)

// Request is the durable record of one generation job bound to one reservation.
type Request struct {
	id               uuid.UUID
	userID           uuid.UUID
	reservationID    uuid.UUID
	validationID     uuid.UUID
	idempotencyKey   string
	prompt           string
	translatedPrompt string
	status           Status
	dishID           *uuid.UUID
	imageURL         *string
	failureCode      *string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewRequest starts at GENERATING's predecessor: the reservation is already held.
func NewRequest(
	userID, reservationID, validationID uuid.UUID,
	idempotencyKey, prompt, translatedPrompt string,
	now time.Time,
) (*Request, error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey == "" {
		return nil, ErrIdempotencyKeyRequired
	}
	return &Request{
		id:               uuid.New(),
		userID:           userID,
		reservationID:    reservationID,
		validationID:     validationID,
		idempotencyKey:   idempotencyKey,
		prompt:           prompt,
		translatedPrompt: translatedPrompt,
		status:           StatusReserving,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructRequest(
	id, userID, reservationID, validationID uuid.UUID,
	idempotencyKey, prompt, translatedPrompt string,
	status Status,
	dishID *uuid.UUID,
	imageURL, failureCode *string,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:               id,
		userID:           userID,
		reservationID:    reservationID,
		validationID:     validationID,
		idempotencyKey:   idempotencyKey,
		prompt:           prompt,
		translatedPrompt: translatedPrompt,
		status:           status,
		dishID:           dishID,
		imageURL:         imageURL,
		failureCode:      failureCode,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// GenerationPrompt prefers the translated variant sent to the image model.
func (r *Request) GenerationPrompt() string {
	if p := strings.TrimSpace(r.translatedPrompt); p != "" {
		return p
	}
	return strings.TrimSpace(r.prompt)
}

func (r *Request) HasImage() bool {
	return r.imageURL != nil && *r.imageURL != ""
}

func (r *Request) HasDish() bool {
	return r.dishID != nil
}

func (r *Request) ID() uuid.UUID            { return r.id }
func (r *Request) UserID() uuid.UUID        { return r.userID }
func (r *Request) ReservationID() uuid.UUID { return r.reservationID }
func (r *Request) ValidationID() uuid.UUID  { return r.validationID }
func (r *Request) IdempotencyKey() string   { return r.idempotencyKey }
func (r *Request) Prompt() string           { return r.prompt }
func (r *Request) TranslatedPrompt() string { return r.translatedPrompt }
func (r *Request) Status() Status           { return r.status }
func (r *Request) DishID() *uuid.UUID       { return r.dishID }
func (r *Request) ImageURL() *string        { return r.imageURL }
func (r *Request) FailureCode() *string     { return r.failureCode }
func (r *Request) CreatedAt() time.Time     { return r.createdAt }
func (r *Request) UpdatedAt() time.Time     { return r.updatedAt }
