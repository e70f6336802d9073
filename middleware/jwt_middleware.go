package middleware

import (
	"interview-scheduler/config"
	authutils "interview-scheduler/lib/utils/auth-utils"
	apimodels "interview-scheduler/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			// refresh токен годится только для /auth/refresh-token
			if authutils.IsRefreshToken(ctx) {
				return unauthorized(ctx)
			}
			return ctx.Next()
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return unauthorized(ctx)
		},
	})
}

func unauthorized(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
}
