//go:build e2e

package creation_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"dish-studio/internal/domain/user"
	reqdto "dish-studio/internal/handler/dto/request"
	resdto "dish-studio/internal/handler/dto/response"
	"dish-studio/tests/common/dbtest"
	"dish-studio/tests/common/httptest"
	"dish-studio/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reserveURL  = "/api/slots/reserve"
	validateURL = "/api/prompts/validate"
	generateURL = "/api/creations/generate"
	statusURL   = "/api/creations/status"
)

type CreationSuite struct {
	e2e.SharedSuite
}

func TestCreationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CreationSuite))
}

type session struct {
	userID uuid.UUID
	token  string
}

func (s *CreationSuite) newSession(role user.Role) session {
	id, token := s.JWT.NewUser(s.T(), role)
	return session{userID: id, token: token}
}

func (s *CreationSuite) reserve(sess session, key string) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, reserveURL,
		reqdto.ReserveSlotRequest{IdempotencyKey: key}, sess.token)
	var res resdto.ReserveSlotResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return uuid.MustParse(res.ReservationID)
}

func (s *CreationSuite) validate(sess session, prompt string) *resdto.ValidatePromptResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, validateURL,
		reqdto.ValidatePromptRequest{Prompt: prompt}, sess.token)
	var res resdto.ValidatePromptResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

func (s *CreationSuite) generate(sess session, reservationID, validationID uuid.UUID, key string) *resdto.GenerateResponse {
	t := s.T()
	w := s.postGenerate(sess, reservationID, validationID, key)
	var res resdto.GenerateResponse
	httptest.AssertSuccessResponse(t, w, http.StatusAccepted, &res)
	return &res
}

func (s *CreationSuite) postGenerate(sess session, reservationID, validationID uuid.UUID, key string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, generateURL,
		reqdto.GenerateRequest{ReservationID: reservationID, ValidationID: validationID, IdempotencyKey: key}, sess.token)
}

func (s *CreationSuite) status(sess session, requestID string) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.App.Router, http.MethodGet, statusURL+"?requestId="+requestID, nil, sess.token)
}

// submit runs reserve, validate and generate for a fresh member.
func (s *CreationSuite) submit(sess session) (uuid.UUID, *resdto.GenerateResponse) {
	reservationID := s.reserve(sess, "reserve-key-0001")
	v := s.validate(sess, "miso ramen with charred corn")
	return reservationID, s.generate(sess, reservationID, uuid.MustParse(v.ValidationID), "generate-key-0001")
}

// =============================================================================
// TestPipeline
// =============================================================================

func (s *CreationSuite) TestPipeline() {
	s.Run("Normal case: reserve, validate, generate and finish with a dish", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)

		reservationID, gen := s.submit(sess)
		require.Equal(t, resdto.StatusProcessing, gen.Status)
		require.False(t, gen.Replayed)

		s.Drain()

		w := s.status(sess, gen.RequestID)
		var out resdto.CreationStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)
		require.Equal(t, "DONE", out.Status)
		require.NotNil(t, out.DishID)
		require.NotNil(t, out.ImageURL)

		require.Equal(t, "CONFIRMED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(1), free)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "dishes", "id = $1", uuid.MustParse(*out.DishID)))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "safety_audit_logs", "request_id = $1", uuid.MustParse(gen.RequestID)))
	})

	s.Run("Normal case: status shows the stored stage before the worker runs", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		_, gen := s.submit(sess)

		w := s.status(sess, gen.RequestID)
		var out resdto.CreationStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)
		require.Equal(t, "RESERVING", out.Status)
		require.Nil(t, out.DishID)
	})

	s.Run("Error case: safety block fails the request and refunds the slot", func() {
		t := s.T()
		s.App.Providers.SetSafetyDecision("BLOCK")
		sess := s.newSession(user.RoleMember)

		reservationID, gen := s.submit(sess)
		s.Drain()

		w := s.status(sess, gen.RequestID)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "GENERATE_FAILED")
		require.Contains(t, w.Body.String(), "SAFETY_BLOCKED")

		require.Equal(t, "FAILED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(0), free)
		require.Zero(t, dbtest.CountRows(t, s.DB, "dishes", "request_id = $1", uuid.MustParse(gen.RequestID)))
	})

	s.Run("Error case: provider rejection is terminal and refunds", func() {
		t := s.T()
		s.App.Providers.SetGenerateStatus(http.StatusBadRequest)
		sess := s.newSession(user.RoleMember)

		reservationID, gen := s.submit(sess)
		s.Drain()

		row := dbtest.GetRequest(t, s.DB, uuid.MustParse(gen.RequestID))
		require.Equal(t, "FAILED", row.Status)
		require.NotNil(t, row.FailureCode)
		require.Equal(t, "PROVIDER_REJECTED", *row.FailureCode)
		require.Equal(t, "FAILED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(0), free)
	})

	s.Run("Normal case: transient provider errors retry then succeed", func() {
		t := s.T()
		s.App.Providers.SetGenerateStatus(http.StatusServiceUnavailable)
		sess := s.newSession(user.RoleMember)

		_, gen := s.submit(sess)
		s.Drain()
		require.NotEqual(t, "DONE", dbtest.GetRequest(t, s.DB, uuid.MustParse(gen.RequestID)).Status)

		s.App.Providers.SetGenerateStatus(http.StatusOK)
		dbtest.ReleaseJobs(t, s.DB)
		s.Drain()

		require.Equal(t, "DONE", dbtest.GetRequest(t, s.DB, uuid.MustParse(gen.RequestID)).Status)
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(1), free)
	})

	s.Run("Error case: exhausted retries fail the request and refund", func() {
		t := s.T()
		s.App.Providers.SetGenerateStatus(http.StatusServiceUnavailable)
		sess := s.newSession(user.RoleMember)

		reservationID, gen := s.submit(sess)
		for range s.App.Config.Worker.MaxAttempts {
			s.Drain()
			dbtest.ReleaseJobs(t, s.DB)
		}

		row := dbtest.GetRequest(t, s.DB, uuid.MustParse(gen.RequestID))
		require.Equal(t, "FAILED", row.Status)
		require.Equal(t, "RETRIES_EXHAUSTED", *row.FailureCode)
		require.Equal(t, "FAILED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(0), free)
	})

	s.Run("Normal case: a resumed job skips generation after the image checkpoint", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		_, gen := s.submit(sess)
		requestID := uuid.MustParse(gen.RequestID)

		dbtest.CheckpointImage(t, s.DB, requestID, s.App.Providers.URL()+"/img/saved.png")
		s.Drain()

		generateCalls, safetyCalls, _ := s.App.Providers.Calls()
		require.Zero(t, generateCalls)
		require.Equal(t, 1, safetyCalls)
		row := dbtest.GetRequest(t, s.DB, requestID)
		require.Equal(t, "DONE", row.Status)
		require.Equal(t, s.App.Providers.URL()+"/img/saved.png", *row.ImageURL)
	})

	s.Run("Normal case: a request that already holds a dish is repaired without provider calls", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		reservationID, gen := s.submit(sess)
		requestID := uuid.MustParse(gen.RequestID)
		dishID := dbtest.AttachDish(t, s.DB, requestID, "GENERATING")

		s.Drain()

		generateCalls, safetyCalls, _ := s.App.Providers.Calls()
		require.Zero(t, generateCalls)
		require.Zero(t, safetyCalls)
		row := dbtest.GetRequest(t, s.DB, requestID)
		require.Equal(t, "DONE", row.Status)
		require.Equal(t, dishID, *row.DishID)
		require.Equal(t, "CONFIRMED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(1), free)
	})

	s.Run("Normal case: exhausting a finished request keeps its slot spent", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		reservationID, gen := s.submit(sess)
		requestID := uuid.MustParse(gen.RequestID)
		s.Drain()
		require.Equal(t, "DONE", dbtest.GetRequest(t, s.DB, requestID).Status)

		err := s.App.Pipeline.Exhaust(context.Background(), requestID, errors.New("commit acknowledgement lost"))

		require.NoError(t, err)
		row := dbtest.GetRequest(t, s.DB, requestID)
		require.Equal(t, "DONE", row.Status)
		require.Nil(t, row.FailureCode)
		require.Equal(t, "CONFIRMED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(1), free)
	})

	s.Run("Normal case: exhausting a request with a dish but a lost DONE write repairs it", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		reservationID, gen := s.submit(sess)
		requestID := uuid.MustParse(gen.RequestID)
		dbtest.AttachDish(t, s.DB, requestID, "SAFETY")

		err := s.App.Pipeline.Exhaust(context.Background(), requestID, errors.New("provider timeout"))

		require.NoError(t, err)
		require.Equal(t, "DONE", dbtest.GetRequest(t, s.DB, requestID).Status)
		require.Equal(t, "CONFIRMED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(1), free)
	})

	s.Run("Normal case: a block verdict arriving after another worker finished does not refund", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		reservationID, gen := s.submit(sess)
		requestID := uuid.MustParse(gen.RequestID)

		// A duplicate delivery finalizes while this run waits on the safety call.
		var settleErr error
		s.App.Providers.SetSafetyDecision("BLOCK")
		s.App.Providers.BeforeSafety(func() {
			_, settleErr = dbtest.SettleWithDish(context.Background(), s.DB, requestID, "DONE")
		})

		s.Drain()

		require.NoError(t, settleErr)
		row := dbtest.GetRequest(t, s.DB, requestID)
		require.Equal(t, "DONE", row.Status)
		require.Nil(t, row.FailureCode)
		require.Equal(t, "CONFIRMED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(1), free)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "jobs", "singleton_key = $1 AND status = 'completed'", gen.RequestID))
	})

	s.Run("Normal case: a renewed lease keeps an in-flight job from being claimed again", func() {
		t := s.T()
		ctx := context.Background()
		sess := s.newSession(user.RoleMember)
		_, gen := s.submit(sess)

		first, err := s.App.Queue.Receive(ctx, 4)
		require.NoError(t, err)
		require.Len(t, first, 1)

		// The first delivery stalls past its lease and the job is claimed again.
		s.App.Clock.Add(s.App.Config.Queue.Lease + time.Second)
		second, err := s.App.Queue.Receive(ctx, 4)
		require.NoError(t, err)
		require.Len(t, second, 1)
		require.Equal(t, gen.RequestID, second[0].RequestID.String())

		owned, err := s.App.Queue.Extend(ctx, first[0])
		require.NoError(t, err)
		require.False(t, owned, "stale delivery must not keep the job")

		owned, err = s.App.Queue.Extend(ctx, second[0])
		require.NoError(t, err)
		require.True(t, owned)

		// Still inside the renewed lease: nothing to claim.
		s.App.Clock.Add(s.App.Config.Queue.Lease - time.Second)
		again, err := s.App.Queue.Receive(ctx, 4)
		require.NoError(t, err)
		require.Empty(t, again)
	})
}

// =============================================================================
// TestGenerate - coordinator checks and idempotency
// =============================================================================

func (s *CreationSuite) TestGenerate() {
	s.Run("Normal case: duplicate submit returns the same request and one job", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		reservationID := s.reserve(sess, "reserve-key-0001")
		v := uuid.MustParse(s.validate(sess, "grilled mackerel bowl").ValidationID)

		first := s.generate(sess, reservationID, v, "generate-key-0001")
		second := s.generate(sess, reservationID, v, "generate-key-0001")

		require.Equal(t, first.RequestID, second.RequestID)
		require.True(t, second.Replayed)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "create_requests", "user_id = $1", sess.userID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "jobs", "singleton_key = $1", first.RequestID))
	})

	s.Run("Normal case: parallel duplicate submits create one request", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		reservationID := s.reserve(sess, "reserve-key-0001")
		v := uuid.MustParse(s.validate(sess, "grilled mackerel bowl").ValidationID)

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			ids   = map[string]int{}
			start = make(chan struct{})
		)
		for range 6 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				w := s.postGenerate(sess, reservationID, v, "generate-key-0001")
				if w.Code != http.StatusAccepted {
					return
				}
				var res resdto.GenerateResponse
				if httptest.DecodeResponseBody(t, w.Body, &res) == nil {
					mu.Lock()
					ids[res.RequestID]++
					mu.Unlock()
				}
			}()
		}
		close(start)
		wg.Wait()

		require.Len(t, ids, 1)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "create_requests", "user_id = $1", sess.userID))
	})

	s.Run("Error case: same key for a different reservation conflicts", func() {
		t := s.T()
		sess := s.newSession(user.RoleCreator)
		first := s.reserve(sess, "reserve-key-0001")
		second := s.reserve(sess, "reserve-key-0002")
		v := uuid.MustParse(s.validate(sess, "grilled mackerel bowl").ValidationID)
		s.generate(sess, first, v, "generate-key-0001")

		w := s.postGenerate(sess, second, v, "generate-key-0001")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "IDEMPOTENCY_CONFLICT")
		require.Equal(t, "RESERVED", dbtest.ReservationStatus(t, s.DB, second))
	})

	s.Run("Error case: a spent reservation cannot back a second request", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		reservationID := s.reserve(sess, "reserve-key-0001")
		v := uuid.MustParse(s.validate(sess, "grilled mackerel bowl").ValidationID)
		s.generate(sess, reservationID, v, "generate-key-0001")

		w := s.postGenerate(sess, reservationID, v, "generate-key-0002")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "RESERVATION_FAILED")
	})

	s.Run("Error case: expired reservation is reclaimed once under parallel submits", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		reservationID := s.reserve(sess, "reserve-key-0001")
		v := uuid.MustParse(s.validate(sess, "grilled mackerel bowl").ValidationID)
		s.App.Clock.Add(6 * time.Minute)

		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			codes = map[int]int{}
		)
		for i := range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := s.postGenerate(sess, reservationID, v, fmt.Sprintf("generate-key-%04d", i))
				mu.Lock()
				codes[w.Code]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		require.Equal(t, 2, codes[http.StatusGone])
		require.Equal(t, "EXPIRED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(0), free)
	})

	s.Run("Error case: a blocked validation is refused before any slot is spent", func() {
		t := s.T()
		s.App.Providers.SetModerationDecision("BLOCK")
		sess := s.newSession(user.RoleMember)
		reservationID := s.reserve(sess, "reserve-key-0001")
		v := s.validate(sess, "something unpleasant")
		require.Equal(t, "BLOCK", v.Decision)

		w := s.postGenerate(sess, reservationID, uuid.MustParse(v.ValidationID), "generate-key-0001")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "PROMPT_BLOCKED")
		require.Equal(t, "RESERVED", dbtest.ReservationStatus(t, s.DB, reservationID))
	})

	s.Run("Error case: unknown or foreign validation is not found", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		other := s.newSession(user.RoleMember)
		reservationID := s.reserve(sess, "reserve-key-0001")
		foreign := dbtest.InsertValidation(t, s.DB, other.userID, "udon", "ALLOW")

		for _, id := range []uuid.UUID{uuid.New(), foreign} {
			w := s.postGenerate(sess, reservationID, id, "generate-key-0001")
			httptest.AssertErrorResponse(t, w, http.StatusNotFound, "VALIDATION_NOT_FOUND")
		}
	})

	s.Run("Error case: enqueue failure fails the request and returns the slot", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		freeBefore, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		reservationID := s.reserve(sess, "reserve-key-0001")
		v := uuid.MustParse(s.validate(sess, "grilled mackerel bowl").ValidationID)
		s.App.Enqueuer.SetDown(true)

		w := s.postGenerate(sess, reservationID, v, "generate-key-0001")

		httptest.AssertErrorResponse(t, w, http.StatusServiceUnavailable, "QUEUE_UNAVAILABLE")
		requestID := dbtest.RequestIDByKey(t, s.DB, sess.userID, "generate-key-0001")
		row := dbtest.GetRequest(t, s.DB, requestID)
		require.Equal(t, "FAILED", row.Status)
		require.NotNil(t, row.FailureCode)
		require.Equal(t, "QUEUE_UNAVAILABLE", *row.FailureCode)
		require.Equal(t, "FAILED", dbtest.ReservationStatus(t, s.DB, reservationID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, freeBefore, free)
		require.Zero(t, dbtest.CountRows(t, s.DB, "jobs", "singleton_key = $1", requestID.String()))

		// The refund frees the member's daily allowance for another try.
		s.App.Enqueuer.SetDown(false)
		s.reserve(sess, "reserve-key-0002")
	})

	s.Run("Error case: another user's request status is not found", func() {
		t := s.T()
		sess := s.newSession(user.RoleMember)
		other := s.newSession(user.RoleMember)
		_, gen := s.submit(sess)

		w := s.status(other, gen.RequestID)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "REQUEST_NOT_FOUND")
	})
}
