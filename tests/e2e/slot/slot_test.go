//go:build e2e

package slot_test

import (
	"context"
	"fmt"
	"net/http"
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
	reserveURL       = "/api/slots/reserve"
	cancelURL        = "/api/slots/cancel"
	summaryURL       = "/api/slots/summary"
	publicSummaryURL = "/api/slots/public-summary"
)

type SlotSuite struct {
	e2e.SharedSuite
}

func TestSlotSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SlotSuite))
}

func (s *SlotSuite) reserve(token, key string) *resdto.ReserveSlotResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, reserveURL,
		reqdto.ReserveSlotRequest{IdempotencyKey: key}, token)
	var res resdto.ReserveSlotResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.ReservationID)
	return &res
}

// =============================================================================
// TestReserve
// =============================================================================

func (s *SlotSuite) TestReserve() {
	s.Run("Normal case: reserve holds one free slot and counts it", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleMember)

		res := s.reserve(token, "reserve-key-0001")

		require.True(t, res.OK)
		require.Equal(t, "FREE", res.SlotType)
		require.Equal(t, "RESERVED", res.Status)
		require.Equal(t, int64(300), res.ExpiresInSeconds)
		free, ad := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(1), free)
		require.Equal(t, int32(0), ad)
	})

	s.Run("Normal case: replay with the same key returns the same reservation", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleMember)

		first := s.reserve(token, "reserve-key-0001")
		second := s.reserve(token, "reserve-key-0001")

		require.Equal(t, first.ReservationID, second.ReservationID)
		require.True(t, second.Replayed)
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(1), free)
	})

	s.Run("Error case: personal allowance holds under parallel callers", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleCreator) // 3 free slots per day

		const callers = 10
		codes := parallelReserve(t, s, callers, func(i int) (string, string) {
			return token, fmt.Sprintf("parallel-key-%04d", i)
		})

		require.Equal(t, 3, codes[http.StatusOK])
		require.Equal(t, callers-3, codes[http.StatusTooManyRequests])
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(3), free)
	})

	s.Run("Error case: global capacity holds under parallel callers", func() {
		t := s.T()
		limit := int(s.App.Config.Slot.FreeDailyLimit)
		callers := limit + 4
		tokens := make([]string, callers)
		for i := range tokens {
			_, tokens[i] = s.JWT.NewUser(t, user.RoleMember)
		}

		codes := parallelReserve(t, s, callers, func(i int) (string, string) {
			return tokens[i], "global-key-0001"
		})

		require.Equal(t, limit, codes[http.StatusOK])
		require.Equal(t, callers-limit, codes[http.StatusTooManyRequests])
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(limit), free)
	})

	s.Run("Error case: member's second free slot is refused with the personal code", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleMember)
		s.reserve(token, "reserve-key-0001")

		w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, reserveURL,
			reqdto.ReserveSlotRequest{IdempotencyKey: "reserve-key-0002"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "FREE_SLOT_LIMIT_REACHED")
	})

	s.Run("Normal case: an expired hold is reclaimed before the next reserve", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleMember)
		first := s.reserve(token, "reserve-key-0001")

		s.App.Clock.Add(6 * time.Minute)
		second := s.reserve(token, "reserve-key-0002")

		require.NotEqual(t, first.ReservationID, second.ReservationID)
		require.Equal(t, "EXPIRED", dbtest.ReservationStatus(t, s.DB, uuid.MustParse(first.ReservationID)))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(1), free)
	})

	s.Run("Error case: 401 without token", func() {
		w := httptest.PerformRequest(s.T(), s.App.Router, http.MethodPost, reserveURL,
			reqdto.ReserveSlotRequest{IdempotencyKey: "reserve-key-0001"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}

func parallelReserve(t *testing.T, s *SlotSuite, n int, args func(i int) (string, string)) map[int]int {
	t.Helper()

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		codes = map[int]int{}
		start = make(chan struct{})
	)
	for i := range n {
		token, key := args(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, reserveURL,
				reqdto.ReserveSlotRequest{IdempotencyKey: key}, token)
			mu.Lock()
			codes[w.Code]++
			mu.Unlock()
		}()
	}
	close(start)
	wg.Wait()
	return codes
}

// =============================================================================
// TestRecovery - guarded transitions release quota exactly once
// =============================================================================

func (s *SlotSuite) TestRecovery() {
	s.Run("Normal case: cancel twice releases once", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleMember)
		res := s.reserve(token, "reserve-key-0001")
		body := reqdto.CancelSlotRequest{ReservationID: uuid.MustParse(res.ReservationID)}

		for range 2 {
			w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, cancelURL, body, token)
			var out resdto.CancelSlotResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)
			require.Equal(t, "CANCELLED", out.Status)
		}

		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(0), free)
	})

	s.Run("Error case: cancelling someone else's reservation is not found", func() {
		t := s.T()
		_, owner := s.JWT.NewUser(t, user.RoleMember)
		_, other := s.JWT.NewUser(t, user.RoleMember)
		res := s.reserve(owner, "reserve-key-0001")

		w := httptest.PerformRequest(t, s.App.Router, http.MethodPost, cancelURL,
			reqdto.CancelSlotRequest{ReservationID: uuid.MustParse(res.ReservationID)}, other)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "RESERVATION_NOT_FOUND")
		require.Equal(t, "RESERVED", dbtest.ReservationStatus(t, s.DB, uuid.MustParse(res.ReservationID)))
	})

	s.Run("Normal case: cancel, reclaim and markFailed are idempotent", func() {
		t := s.T()
		ctx := context.Background()
		_, token := s.JWT.NewUser(t, user.RoleStaff)
		reclaimID := uuid.MustParse(s.reserve(token, "reserve-key-0001").ReservationID)
		failID := uuid.MustParse(s.reserve(token, "reserve-key-0002").ReservationID)
		cancelID := uuid.MustParse(s.reserve(token, "reserve-key-0003").ReservationID)

		for i := range 2 {
			_, applied, err := s.App.Recovery.Cancel(ctx, cancelID)
			require.NoError(t, err)
			require.Equal(t, i == 0, applied)

			_, applied, err = s.App.Recovery.Reclaim(ctx, reclaimID)
			require.NoError(t, err)
			require.Equal(t, i == 0, applied)

			_, applied, err = s.App.Recovery.MarkFailed(ctx, failID)
			require.NoError(t, err)
			require.Equal(t, i == 0, applied)
		}

		require.Equal(t, "EXPIRED", dbtest.ReservationStatus(t, s.DB, reclaimID))
		require.Equal(t, "FAILED", dbtest.ReservationStatus(t, s.DB, failID))
		require.Equal(t, "CANCELLED", dbtest.ReservationStatus(t, s.DB, cancelID))
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(0), free)
	})

	s.Run("Normal case: racing reclaims decrement once", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleMember)
		id := uuid.MustParse(s.reserve(token, "reserve-key-0001").ReservationID)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			applied int
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, ok, err := s.App.Recovery.Reclaim(context.Background(), id)
				if err == nil && ok {
					mu.Lock()
					applied++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		require.Equal(t, 1, applied)
		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(0), free)
	})

	s.Run("Normal case: periodic sweep reclaims abandoned holds", func() {
		t := s.T()
		for i := range 3 {
			_, token := s.JWT.NewUser(t, user.RoleMember)
			s.reserve(token, fmt.Sprintf("sweep-key-%04d", i))
		}

		require.Equal(t, 0, s.App.Reclaim.RunOnce(context.Background()))
		s.App.Clock.Add(6 * time.Minute)
		require.Equal(t, 3, s.App.Reclaim.RunOnce(context.Background()))
		require.Equal(t, 0, s.App.Reclaim.RunOnce(context.Background()))

		free, _ := dbtest.CounterUsage(t, s.DB, s.DayKey())
		require.Equal(t, int32(0), free)
	})
}

// =============================================================================
// TestSummary
// =============================================================================

func (s *SlotSuite) TestSummary() {
	s.Run("Normal case: public summary reports configured limits before any reserve", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.App.Router, http.MethodGet, publicSummaryURL, nil, "")

		var out resdto.SlotSummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)
		require.Equal(t, s.App.Config.Slot.FreeDailyLimit, out.FreeLimit)
		require.Equal(t, out.FreeLimit, out.FreeRemaining)
		require.Nil(t, out.Personal)
	})

	s.Run("Normal case: personal summary reflects the caller's holds", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleMember)
		s.reserve(token, "reserve-key-0001")

		w := httptest.PerformRequest(t, s.App.Router, http.MethodGet, summaryURL, nil, token)

		var out resdto.SlotSummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)
		require.Equal(t, int32(1), out.FreeUsed)
		require.NotNil(t, out.Personal)
		require.Equal(t, 1, out.Personal.FreeDailyLimit)
		require.Equal(t, 1, out.Personal.ActiveFreeReservationCount)
		require.False(t, out.Personal.CanUseFreeSlotToday)
	})

	s.Run("Normal case: reading the summary reclaims the caller's lapsed hold", func() {
		t := s.T()
		_, token := s.JWT.NewUser(t, user.RoleMember)
		s.reserve(token, "reserve-key-0001")
		s.App.Clock.Add(6 * time.Minute)

		w := httptest.PerformRequest(t, s.App.Router, http.MethodGet, summaryURL, nil, token)

		var out resdto.SlotSummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &out)
		require.Equal(t, int32(0), out.FreeUsed)
		require.True(t, out.Personal.CanUseFreeSlotToday)
	})
}
