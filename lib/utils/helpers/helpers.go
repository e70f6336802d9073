package helpers

import (
	"context"
	"mime/multipart"
	"slices"

	"github.com/gofiber/fiber/v2"
)

// HeaderLogIgnore отключает логирование тела ответа в fiberlog
const HeaderLogIgnore = "X-Log-Ignore"

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

func Contains[T comparable](list []T, value T) bool {
	return slices.Contains(list, value)
}

func GetFileContentType(file *multipart.FileHeader) string {
	contentType := file.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		return fiber.MIMEOctetStream
	}
	return contentType
}
