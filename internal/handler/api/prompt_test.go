//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/domain/user"
	"dish-studio/internal/handler/api"
	reqdto "dish-studio/internal/handler/dto/request"
	resdto "dish-studio/internal/handler/dto/response"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/usecase/commands"
	"dish-studio/tests/common/httptest"
	commandsmock "dish-studio/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromptHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromptCommands
	userID       uuid.UUID
}

func (s *PromptHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromptCommands(s.mockCtrl)
	s.userID = uuid.New()

	handler := api.NewPromptHandler(s.mockCommands)
	s.router.POST("/prompts/validate", fakeAuth(s.userID, user.RoleMember), handler.Validate)
}

func (s *PromptHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromptHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromptHandlerTestSuite))
}

func (s *PromptHandlerTestSuite) TestValidate() {
	url := "/prompts/validate"

	s.Run("success: allowed prompt", func() {
		v := &creation.Validation{
			ID:               uuid.New(),
			UserID:           s.userID,
			Prompt:           "tomato risotto",
			TranslatedPrompt: "tomato risotto, plated",
			Decision:         creation.DecisionAllow,
		}
		s.mockCommands.EXPECT().Validate(gomock.Any(), s.userID, "tomato risotto").Return(v, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ValidatePromptRequest{Prompt: "tomato risotto"}, "bearer-token")

		var body resdto.ValidatePromptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.OK)
		s.Equal(v.ID.String(), body.ValidationID)
		s.Equal("ALLOW", body.Decision)
		s.Equal("tomato risotto, plated", body.TranslatedPrompt)
	})

	s.Run("success: blocked prompt is still a 200 answer", func() {
		v := &creation.Validation{ID: uuid.New(), Decision: creation.DecisionBlock, Reason: "violence"}
		s.mockCommands.EXPECT().Validate(gomock.Any(), s.userID, gomock.Any()).Return(v, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ValidatePromptRequest{Prompt: "something"}, "bearer-token")

		var body resdto.ValidatePromptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("BLOCK", body.Decision)
		s.Equal("violence", body.Reason)
	})

	s.Run("error: 400 on empty or oversized prompt", func() {
		for _, p := range []string{"", strings.Repeat("a", 2001)} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ValidatePromptRequest{Prompt: p}, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
		}
	})

	s.Run("error: whitespace-only prompt rejected by the domain", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), s.userID, "   ").Return(nil, creation.ErrEmptyPrompt).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ValidatePromptRequest{Prompt: "   "}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "EMPTY_PROMPT")
	})

	s.Run("error: 503 when moderation is down", func() {
		err := errs.Mark(http.ErrHandlerTimeout, commands.ErrModerationUnavailable)
		s.mockCommands.EXPECT().Validate(gomock.Any(), s.userID, gomock.Any()).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.ValidatePromptRequest{Prompt: "ramen"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "MODERATION_UNAVAILABLE")
	})
}
