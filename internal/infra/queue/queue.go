// Package queue carries pipeline jobs keyed by creation request id. At most
// one live job exists per request inside the dedup window; delivery is
// at-least-once, so consumers must be idempotent.
package queue

import (
	"context"
	"encoding/json"
	"time"

	"dish-studio/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnavailable    = errs.New("queue unavailable")
	ErrInvalidPayload = errs.New("invalid job payload")
)

// Job is one delivery. Handle is backend specific (row id or SQS receipt handle).
type Job struct {
	Handle    string
	RequestID uuid.UUID
	Attempt   int
}

type Queue interface {
	Enqueue(ctx context.Context, requestID uuid.UUID) error
	Receive(ctx context.Context, max int) ([]Job, error)
	// Extend renews the lease on a received job before work starts. false
	// means the delivery is stale: the lease lapsed and another consumer
	// has claimed the job since.
	Extend(ctx context.Context, job Job) (bool, error)
	Ack(ctx context.Context, job Job) error
	Retry(ctx context.Context, job Job, delay time.Duration, cause error) error
	// Bury drops a job that must not run again.
	Bury(ctx context.Context, job Job, cause error) error
}

type payload struct {
	RequestID uuid.UUID `json:"requestId"`
}

func encodePayload(requestID uuid.UUID) ([]byte, error) {
	return json.Marshal(payload{RequestID: requestID})
}

func decodePayload(b []byte) (uuid.UUID, error) {
	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidPayload)
	}
	if p.RequestID == uuid.Nil {
		return uuid.Nil, ErrInvalidPayload
	}
	return p.RequestID, nil
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if len(s) > 1000 {
		s = s[:1000]
	}
	return s
}
