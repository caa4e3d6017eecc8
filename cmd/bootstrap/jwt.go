package bootstrap

import (
	"log/slog"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.TokenParser)),
		),
	),
)

// Without JWT_SECRET only the X-Sharer-User-Id header identifies callers.
func NewJWTService(cfg config.Config, logger *slog.Logger) *jwt.Service {
	svc := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
	logger.Info("Bearer identity configured", "enabled", svc.Enabled())
	return svc
}
