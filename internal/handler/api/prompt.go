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

type PromptHandler struct {
	cmds commands.PromptCommands
}

func NewPromptHandler(cmds commands.PromptCommands) *PromptHandler {
	return &PromptHandler{cmds: cmds}
}

// @Summary Validate a prompt
// @Description Moderates and translates the prompt. A BLOCK decision is returned with 200; generate rejects it.
// @Tags prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidatePromptRequest true "Prompt"
// @Success 200 {object} resdto.ValidatePromptResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/prompts/validate [post]
func (h *PromptHandler) Validate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized")
		return
	}
	var req reqdto.ValidatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	v, err := h.cmds.Validate(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidation(v))
}
