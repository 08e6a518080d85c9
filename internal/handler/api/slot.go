package api

import (
	"net/http"

	reqdto "dish-studio/internal/handler/dto/request"
	resdto "dish-studio/internal/handler/dto/response"
	"dish-studio/internal/handler/httperr"
	"dish-studio/internal/handler/middleware"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/usecase/commands"
	"dish-studio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	cmds  commands.SlotCommands
	q     queries.SlotQueries
	clock clock.Clock
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries, clk clock.Clock) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Reserve a creation slot
// @Description Hold one of today's free slots, or an ad slot when adRewardId is given. Replays with the same idempotencyKey return the original reservation.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveSlotRequest true "Reserve request"
// @Success 200 {object} resdto.ReserveSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/slots/reserve [post]
func (h *SlotHandler) Reserve(c *gin.Context) {
	userID, role, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized")
		return
	}
	var req reqdto.ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), commands.ReserveInput{
		UserID:         userID,
		Role:           role,
		IdempotencyKey: req.IdempotencyKey,
		AdRewardID:     req.AdRewardID,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(result.Reservation, result.Replayed, h.clock.Now()))
}

// @Summary Cancel a reservation
// @Description Release a slot that has not been spent on a generate call yet. Cancelling twice is a no-op.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CancelSlotRequest true "Cancel request"
// @Success 200 {object} resdto.CancelSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/slots/cancel [post]
func (h *SlotHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized")
		return
	}
	var req reqdto.CancelSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	res, err := h.cmds.Cancel(c.Request.Context(), userID, req.ReservationID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelled(res))
}

// @Summary Slot summary for the caller
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SlotSummaryResponse
// @Failure 401 {object} httperr.Response
// @Router /api/slots/summary [get]
func (h *SlotHandler) Summary(c *gin.Context) {
	userID, role, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized")
		return
	}
	view, err := h.q.Summary(c.Request.Context(), userID, role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotSummary(view))
}

// @Summary Public slot summary
// @Description Today's global remaining capacity, no authentication.
// @Tags slots
// @Produce json
// @Success 200 {object} resdto.SlotSummaryResponse
// @Router /api/slots/public-summary [get]
func (h *SlotHandler) PublicSummary(c *gin.Context) {
	view, err := h.q.PublicSummary(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotSummary(view))
}
