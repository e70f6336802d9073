package authutils

import (
	"interview-scheduler/config"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const refreshTokenType = "refresh"

func GetToken(login string, now time.Time) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub": login,
		"exp": now.Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(login string, now time.Time) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":  login,
		"type": refreshTokenType,
		"exp":  now.Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec) * 30).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

// ParseRefreshToken проверяет подпись и тип refresh токена, возвращает логин
func ParseRefreshToken(tokenString string) (login string, err error) {
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.Wrap(err, "некорректный refresh token")
	}
	if tokenType, _ := claims["type"].(string); tokenType != refreshTokenType {
		return "", errors.New("некорректный тип токена")
	}
	login, _ = claims.GetSubject()
	if login == "" {
		return "", errors.New("в токене не указан пользователь")
	}
	return login, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

func GetLogin(ctx *fiber.Ctx) string {
	login, _ := GetClaims(ctx).GetSubject()
	return login
}

func IsRefreshToken(ctx *fiber.Ctx) bool {
	tokenType, _ := GetClaims(ctx)["type"].(string)
	return tokenType == refreshTokenType
}
