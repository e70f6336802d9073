package middleware

import (
	"fmt"
	apimodels "interview-scheduler/models/api"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit ограничивает размер json запросов, загрузка файлов ограничена только лимитом сервера
func WithBodyLimit(limit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.HasSuffix(c.Path(), "/file") {
			return c.Next()
		}
		if size := c.Request().Header.ContentLength(); size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).
				JSON(apimodels.NewError(fmt.Sprintf("размер запроса превышает %d байт", limit)))
		}
		return c.Next()
	}
}
