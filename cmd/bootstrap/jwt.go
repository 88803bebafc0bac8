package bootstrap

import (
	"relove/internal/pkg/config"
	"relove/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTValidator,
	),
)

func NewJWTValidator(cfg config.Config) *jwt.Validator {
	return jwt.NewValidator(cfg.JWT.Secret)
}
