package api

import (
	"net/http"

	reqdto "dish-studio/internal/handler/dto/request"
	resdto "dish-studio/internal/handler/dto/response"
	"dish-studio/internal/handler/httperr"
	"dish-studio/internal/handler/middleware"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/usecase/commands"
	"dish-studio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated = errs.New("unauthenticated")
	errGenerateFailed  = errs.New("creation request failed")
)

type CreationHandler struct {
	cmds commands.CreationCommands
	q    queries.CreationQueries
}

func NewCreationHandler(cmds commands.CreationCommands, q queries.CreationQueries) *CreationHandler {
	return &CreationHandler{cmds: cmds, q: q}
}

// @Summary Start dish generation
// @Description Spend a reserved slot on a validated prompt. The job runs asynchronously; poll the status endpoint.
// @Tags creations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateRequest true "Generate request"
// @Success 202 {object} resdto.GenerateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/creations/generate [post]
func (h *CreationHandler) Generate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized")
		return
	}
	var req reqdto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Generate(c.Request.Context(), commands.GenerateInput{
		UserID:         userID,
		ReservationID:  req.ReservationID,
		ValidationID:   req.ValidationID,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromGenerateResult(result))
}

// @Summary Creation status
// @Description FAILED requests answer with code GENERATE_FAILED; the slot has already been refunded.
// @Tags creations
// @Produce json
// @Security BearerAuth
// @Param requestId query string true "Creation request ID"
// @Success 200 {object} resdto.CreationStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/creations/status [get]
func (h *CreationHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized")
		return
	}
	var q reqdto.CreationStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid requestId")
		return
	}

	view, err := h.q.Status(c.Request.Context(), userID, q.ID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if view.IsFailed() {
		msg := "Generation failed"
		if view.FailureCode != nil {
			msg = "Generation failed: " + *view.FailureCode
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errGenerateFailed, httperr.CodeGenerateFailed, msg)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCreationStatus(view))
}
