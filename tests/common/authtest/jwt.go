//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"dish-studio/internal/domain/user"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the account service does, so tests can
// reach authenticated routes.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	now := time.Now()
	return h.sign(t, userID, role, now, now.Add(duration))
}

// NewUser returns a fresh user id with a valid token; users live in the account service.
func (h *JWTHelper) NewUser(t *testing.T, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issued := time.Now().Add(-time.Hour)
	return h.sign(t, userID, role, issued, issued.Add(time.Minute))
}

// SignWith signs arbitrary claims with the given method and key, for tokens
// a well-behaved issuer would never produce.
func SignWith(t *testing.T, method gojwt.SigningMethod, key any, claims gojwt.Claims) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) sign(t *testing.T, userID uuid.UUID, role user.Role, issued, expires time.Time) string {
	t.Helper()
	return SignWith(t, gojwt.SigningMethodHS256, []byte(h.cfg.Secret), jwt.Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(issued),
			ExpiresAt: gojwt.NewNumericDate(expires),
		},
	})
}
