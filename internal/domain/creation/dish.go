package creation

import (
	"time"

	"dish-studio/internal/pkg/daykey"

	"github.com/google/uuid"
)

// Dish is the immutable artifact produced by a DONE request.
type Dish struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RequestID uuid.UUID
	Prompt    string
	ImageURL  string
	DayKey    daykey.Key
	CreatedAt time.Time
}

func NewDish(req *Request, imageURL string, dayKey daykey.Key, now time.Time) *Dish {
	return &Dish{
		ID:        uuid.New(),
		UserID:    req.UserID(),
		RequestID: req.ID(),
		Prompt:    req.Prompt(),
		ImageURL:  imageURL,
		DayKey:    dayKey,
		CreatedAt: now,
	}
}
