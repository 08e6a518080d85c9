//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/domain/user"
	"dish-studio/internal/handler/api"
	reqdto "dish-studio/internal/handler/dto/request"
	resdto "dish-studio/internal/handler/dto/response"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/usecase/commands"
	"dish-studio/internal/usecase/queries"
	"dish-studio/tests/common/builder"
	"dish-studio/tests/common/httptest"
	"dish-studio/tests/common/testutil"
	commandsmock "dish-studio/tests/mock/commands"
	queriesmock "dish-studio/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CreationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCreationCommands
	mockQueries  *queriesmock.MockCreationQueries
	handler      *api.CreationHandler
	userID       uuid.UUID
}

func (s *CreationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCreationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCreationQueries(s.mockCtrl)
	s.handler = api.NewCreationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	auth := fakeAuth(s.userID, user.RoleMember)
	s.router.POST("/creations/generate", auth, s.handler.Generate)
	s.router.GET("/creations/status", auth, s.handler.Status)
}

func (s *CreationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCreationHandlerSuite(t *testing.T) {
	suite.Run(t, new(CreationHandlerTestSuite))
}

// ================================================================================
// TestGenerate
// ================================================================================

func (s *CreationHandlerTestSuite) TestGenerate() {
	url := "/creations/generate"
	b := builder.NewCreationBuilder().With(func(b *builder.CreationBuilder) { b.UserID = s.userID })
	reqBody := b.BuildGenerateRequestDTO()

	s.Run("success: 202 with PROCESSING while the pipeline runs", func() {
		s.mockCommands.EXPECT().Generate(gomock.Any(), commands.GenerateInput{
			UserID:         s.userID,
			ReservationID:  b.ReservationID,
			ValidationID:   b.ValidationID,
			IdempotencyKey: b.IdempotencyKey,
		}).Return(&commands.GenerateResult{RequestID: b.RequestID, Status: creation.StatusGenerating}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.GenerateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.True(body.OK)
		s.Equal(b.RequestID.String(), body.RequestID)
		s.Equal(resdto.StatusProcessing, body.Status)
		s.False(body.Replayed)
	})

	s.Run("success: replay of a finished request reports its terminal status", func() {
		s.mockCommands.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(&commands.GenerateResult{RequestID: b.RequestID, Status: creation.StatusDone, Replayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.GenerateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal("DONE", body.Status)
		s.True(body.Replayed)
	})

	s.Run("error: 400 on malformed bodies", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing reservation", mutate: testutil.Field("reservationId", nil)},
			{name: "missing validation", mutate: testutil.Field("validationId", nil)},
			{name: "bad reservation id", mutate: testutil.Field("reservationId", "123")},
			{name: "missing key", mutate: testutil.Field("idempotencyKey", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{"unknown validation", commands.ErrValidationNotFound, http.StatusNotFound, "VALIDATION_NOT_FOUND"},
			{"blocked prompt", commands.ErrPromptBlocked, http.StatusConflict, "PROMPT_BLOCKED"},
			{"key reused", commands.ErrIdempotencyConflict, http.StatusConflict, "IDEMPOTENCY_CONFLICT"},
			{"reservation lapsed", commands.ErrReservationExpired, http.StatusGone, "RESERVATION_EXPIRED"},
			{"reservation spent", commands.ErrReservationFailed, http.StatusConflict, "RESERVATION_FAILED"},
			{"reservation unknown", commands.ErrReservationNotFound, http.StatusNotFound, "RESERVATION_NOT_FOUND"},
			{"queue down", errs.Mark(errors.New("sqs: timeout"), commands.ErrQueueUnavailable), http.StatusServiceUnavailable, "QUEUE_UNAVAILABLE"},
			{"internal", errors.New("database error"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestStatus
// ================================================================================

func (s *CreationHandlerTestSuite) TestStatus() {
	statusURL := func(id string) string { return "/creations/status?requestId=" + id }

	s.Run("success: in-flight request", func() {
		view := builder.NewCreationBuilder().With(func(b *builder.CreationBuilder) {
			b.UserID = s.userID
			b.Status = creation.StatusSafety
		}).BuildStatusView()
		s.mockQueries.EXPECT().Status(gomock.Any(), s.userID, view.RequestID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, statusURL(view.RequestID.String()), nil, "bearer-token")

		var body resdto.CreationStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SAFETY", body.Status)
		s.Nil(body.DishID)
		s.Nil(body.ImageURL)
	})

	s.Run("success: done request carries the dish", func() {
		b := builder.NewCreationBuilder().Done("https://img.example/dish.png")
		view := b.BuildStatusView()
		s.mockQueries.EXPECT().Status(gomock.Any(), s.userID, view.RequestID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, statusURL(view.RequestID.String()), nil, "bearer-token")

		var body resdto.CreationStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("DONE", body.Status)
		s.Require().NotNil(body.DishID)
		s.Equal(b.DishID.String(), *body.DishID)
		s.Require().NotNil(body.ImageURL)
		s.Equal("https://img.example/dish.png", *body.ImageURL)
	})

	s.Run("error: failed request answers GENERATE_FAILED with its reason", func() {
		view := builder.NewCreationBuilder().Failed("SAFETY_BLOCKED").BuildStatusView()
		s.mockQueries.EXPECT().Status(gomock.Any(), s.userID, view.RequestID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, statusURL(view.RequestID.String()), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "GENERATE_FAILED")
		s.Contains(rec.Body.String(), "SAFETY_BLOCKED")
	})

	s.Run("error: unknown or foreign request is 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Status(gomock.Any(), s.userID, id).Return(nil, queries.ErrCreationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, statusURL(id.String()), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "REQUEST_NOT_FOUND")
	})

	s.Run("error: 400 on bad request id", func() {
		for _, raw := range []string{"", "not-a-uuid"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, statusURL(raw), nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
		}
	})
}
