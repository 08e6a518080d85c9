//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"dish-studio/internal/domain/user"
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/jwt"
	"dish-studio/tests/common/authtest"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "verifier-test-secret"

func TestVerifierVerify(t *testing.T) {
	helper := authtest.NewJWTHelper(config.JWTConfig{Secret: secret, Duration: "1h"})
	userID := uuid.New()
	inAnHour := gojwt.NewNumericDate(time.Now().Add(time.Hour))

	testCases := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:  "token from the issuer is accepted",
			token: func(t *testing.T) string { return helper.GenerateToken(t, userID, user.RoleMember) },
		},
		{
			name:    "expired token",
			token:   func(t *testing.T) string { return helper.CreateExpiredToken(t, userID, user.RoleMember) },
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name: "token signed with another secret",
			token: func(t *testing.T) string {
				return authtest.SignWith(t, gojwt.SigningMethodHS256, []byte("someone-else"), jwt.Claims{
					UserID: userID, Role: "member", RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: inAnHour},
				})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "HS512 is not accepted",
			token: func(t *testing.T) string {
				return authtest.SignWith(t, gojwt.SigningMethodHS512, []byte(secret), jwt.Claims{
					UserID: userID, Role: "member", RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: inAnHour},
				})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "token without expiry",
			token: func(t *testing.T) string {
				return authtest.SignWith(t, gojwt.SigningMethodHS256, []byte(secret), jwt.Claims{UserID: userID, Role: "member"})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "token without a user",
			token: func(t *testing.T) string {
				return authtest.SignWith(t, gojwt.SigningMethodHS256, []byte(secret), jwt.Claims{
					Role: "member", RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: inAnHour},
				})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not.a.token" },
			wantErr: jwt.ErrInvalidToken,
		},
	}

	v := jwt.NewVerifier(secret)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := v.Verify(tc.token(t))

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
			assert.Equal(t, user.RoleMember.String(), claims.Role)
		})
	}
}
