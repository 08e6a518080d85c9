package bootstrap

import (
	"dish-studio/internal/pkg/config"
	"dish-studio/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTVerifier,
	),
)

// Tokens are issued by the account service; this process only verifies them.
func NewJWTVerifier(cfg config.Config) *jwt.Verifier {
	return jwt.NewVerifier(cfg.JWT.Secret)
}
