package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

// ErrNotify отправляет сведения об ответах 5xx на addr
func ErrNotify(addr string, timeout time.Duration) fiber.Handler {
	client := &http.Client{Timeout: timeout}
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return err
		}

		n := errNotification{
			Code:      statusCode,
			Method:    c.Method(),
			Path:      c.OriginalURL(),
			RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
		}
		if r := c.Route(); r != nil {
			n.Path = r.Path
		}
		var resp struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(c.Response().Body(), &resp) == nil && resp.Message != "" {
			n.Error = resp.Message
		} else {
			n.Error = string(c.Response().Body())
		}
		if err != nil && n.Error == "" {
			n.Error = err.Error()
		}

		go sendErrNotification(client, addr, n)
		return err
	}
}

func sendErrNotification(client *http.Client, addr string, n errNotification) {
	logger := log.WithField("path", n.Path)
	payload, err := json.Marshal(n)
	if err != nil {
		logger.WithError(err).Warn("ошибка формирования уведомления об ошибке")
		return
	}
	resp, err := client.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
	if err != nil {
		logger.WithError(err).Warn("ошибка отправки уведомления об ошибке")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		logger.WithField("status", resp.StatusCode).Warn("сервис уведомлений отклонил уведомление об ошибке")
	}
}
