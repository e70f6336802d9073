package fiberlog

import (
	"interview-scheduler/lib/utils/helpers"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{
		Logger:    logger,
		Tags:      []string{TagStatus, TagMethod, TagPath, TagBody, TagResBody},
		SkipPaths: []string{"/health"},
	}))
	app.Post("/echo", func(ctx *fiber.Ctx) error {
		return ctx.Send(ctx.Body())
	})
	app.Get("/file", func(ctx *fiber.Ctx) error {
		ctx.Set(helpers.HeaderLogIgnore, "true")
		return ctx.SendString("binary")
	})
	app.Get("/fail", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusInternalServerError)
	})
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	t.Run(`request and response bodies`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a":1}`)))
		require.NoError(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, `{"a":1}`, entry.Data[TagBody])
		require.Equal(t, `{"a":1}`, entry.Data[TagResBody])
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
		require.Equal(t, "запрос api POST /echo", entry.Message)
	})
	t.Run(`ignored response body`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/file", nil))
		require.NoError(t, err)
		require.NotContains(t, hook.LastEntry().Data, TagResBody)
	})
	t.Run(`server error is logged as error`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.NoError(t, err)
		require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	})
	t.Run(`skipped path`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		require.Empty(t, hook.AllEntries())
	})
}
