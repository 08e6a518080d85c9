package httperr

import (
	"net/http"

	"dish-studio/internal/domain/creation"
	"dish-studio/internal/pkg/errs"
	"dish-studio/internal/usecase/commands"
	"dish-studio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Response is the uniform failure body: {ok:false, code, message}.
type Response struct {
	Status  int    `json:"-"`
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL_ERROR"
	CodeGenerateFailed = "GENERATE_FAILED"
)

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters only where errors are marked with more than one sentinel.
var mappings = []mapping{
	{commands.ErrIdempotencyKeyRequired, http.StatusBadRequest, "IDEMPOTENCY_KEY_REQUIRED", "Idempotency key is required"},
	{commands.ErrNonceRequired, http.StatusBadRequest, "NONCE_REQUIRED", "Nonce is required"},
	{creation.ErrEmptyPrompt, http.StatusBadRequest, "EMPTY_PROMPT", "Prompt is empty"},
	{creation.ErrPromptTooLong, http.StatusBadRequest, "PROMPT_TOO_LONG", "Prompt is too long"},

	{commands.ErrFreeSlotLimitReached, http.StatusTooManyRequests, "FREE_SLOT_LIMIT_REACHED", "Free slot limit reached for today"},
	{commands.ErrAdSlotLimitReached, http.StatusTooManyRequests, "AD_SLOT_LIMIT_REACHED", "Ad slot limit reached for today"},
	{commands.ErrSlotCapacityExhausted, http.StatusTooManyRequests, "SLOT_CAPACITY_EXHAUSTED", "No slots left today"},

	{commands.ErrAdRewardNotFound, http.StatusNotFound, "AD_REWARD_NOT_FOUND", "Ad reward not found"},
	{commands.ErrAdRewardExpired, http.StatusGone, "AD_REWARD_EXPIRED", "Ad reward expired"},
	{commands.ErrAdRewardUnavailable, http.StatusConflict, "AD_REWARD_UNAVAILABLE", "Ad reward cannot be used"},
	{commands.ErrAdRewardConflict, http.StatusConflict, "AD_REWARD_CONFLICT", "Ad reward already confirmed"},

	{commands.ErrReservationNotFound, http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reservation not found"},
	{commands.ErrReservationNotOwned, http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reservation not found"},
	{commands.ErrReservationExpired, http.StatusGone, "RESERVATION_EXPIRED", "Reservation expired"},
	{commands.ErrReservationFailed, http.StatusConflict, "RESERVATION_FAILED", "Reservation is no longer usable"},

	{commands.ErrValidationNotFound, http.StatusNotFound, "VALIDATION_NOT_FOUND", "Prompt validation not found"},
	{commands.ErrPromptBlocked, http.StatusConflict, "PROMPT_BLOCKED", "Prompt was blocked"},
	{commands.ErrIdempotencyConflict, http.StatusConflict, "IDEMPOTENCY_CONFLICT", "Idempotency key already used for another reservation"},
	{queries.ErrCreationNotFound, http.StatusNotFound, "REQUEST_NOT_FOUND", "Creation request not found"},

	{commands.ErrQueueUnavailable, http.StatusServiceUnavailable, "QUEUE_UNAVAILABLE", "Job queue unavailable, slot refunded"},
	{commands.ErrModerationUnavailable, http.StatusServiceUnavailable, "MODERATION_UNAVAILABLE", "Prompt check unavailable"},
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Code: code, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error onto its status and code; unknown errors are 500.
func Abort(c *gin.Context, err error) {
	status, code, msg := Classify(err)
	AbortWithError(c, status, err, code, msg)
}

func Classify(err error) (status int, code, msg string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.code, m.message
		}
	}
	return http.StatusInternalServerError, CodeInternal, "Internal server error"
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, CodeInvalidRequest, msg)
}
