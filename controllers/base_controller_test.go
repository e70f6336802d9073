package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errMissing = errors.New("запись не найдена")

func TestSendError(t *testing.T) {
	RegisterErrorStatus(fiber.StatusNotFound, errMissing)
	c := BaseAPIController{}
	app := fiber.New()
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return c.SendError(ctx, c.GetLogger(ctx), errors.Wrap(errMissing, "store"), "ошибка получения")
	})
	app.Get("/broken", func(ctx *fiber.Ctx) error {
		return c.SendError(ctx, c.GetLogger(ctx), errors.New("pq: connection refused"), "ошибка получения")
	})

	t.Run(`registered error keeps its message`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		require.Contains(t, string(body), "store: запись не найдена")
	})
	t.Run(`unknown error is hidden`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/broken", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		require.NotContains(t, string(body), "pq:")
	})
}

func TestGetLocale(t *testing.T) {
	c := BaseAPIController{}
	var locale string
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		locale = c.GetLocale(ctx)
		return nil
	})
	for header, expected := range map[string]string{
		"":                     "",
		"ru-RU,ru;q=0.9":       "ru",
		"en-GB;q=0.5,de;q=0.9": "de",
		"not a language;;":     "",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(fiber.HeaderAcceptLanguage, header)
		}
		_, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, expected, locale, header)
	}
}

func TestGetID(t *testing.T) {
	c := BaseAPIController{}
	var gotErr error
	app := fiber.New()
	app.Get("/:id", func(ctx *fiber.Ctx) error {
		_, gotErr = c.GetID(ctx)
		return nil
	})
	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/7d3c2a5e-8f0b-4c1e-9a7d-2b6f4e1c0a9d", nil))
	require.NoError(t, err)
	require.NoError(t, gotErr)

	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/abc", nil))
	require.NoError(t, err)
	require.Error(t, gotErr)
}
