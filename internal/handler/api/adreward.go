package api

import (
	"net/http"

	reqdto "dish-studio/internal/handler/dto/request"
	resdto "dish-studio/internal/handler/dto/response"
	"dish-studio/internal/handler/httperr"
	"dish-studio/internal/handler/middleware"
	"dish-studio/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdRewardHandler struct {
	cmds commands.AdRewardCommands
}

func NewAdRewardHandler(cmds commands.AdRewardCommands) *AdRewardHandler {
	return &AdRewardHandler{cmds: cmds}
}

// @Summary Request an ad reward nonce
// @Tags ads
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.RewardRequestResponse
// @Failure 401 {object} httperr.Response
// @Router /api/ads/reward/request [post]
func (h *AdRewardHandler) Request(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized")
		return
	}
	reward, err := h.cmds.Request(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRewardRequest(reward))
}

// @Summary Confirm a watched ad
// @Tags ads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmRewardRequest true "Confirm request"
// @Success 200 {object} resdto.RewardConfirmResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/ads/reward/confirm [post]
func (h *AdRewardHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized")
		return
	}
	var req reqdto.ConfirmRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Confirm(c.Request.Context(), commands.ConfirmRewardInput{
		UserID:         userID,
		Nonce:          req.Nonce,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardConfirm(result.Reward, result.Replayed))
}
