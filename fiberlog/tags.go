package fiberlog

import (
	"interview-scheduler/lib/utils/helpers"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid               = "pid"
	TagLatency           = "latency"
	TagStatus            = "status"
	TagIP                = "ip"
	TagMethod            = "method"
	TagPath              = "path"
	TagURL               = "url"
	TagUA                = "ua"
	TagBody              = "body"
	TagResBody           = "resBody"
	TagQueryStringParams = "queryParams"
	RequestID            = "requestId"
)

// максимальная длина тела запроса/ответа в логе
const maxBodyLen = 4096

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag вычисляет значение поля лога для тега
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			if isMultipart(c) {
				return ""
			}
			return cut(string(c.Body()))
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if c.GetRespHeader(helpers.HeaderLogIgnore) != "" {
				return ""
			}
			return cut(string(c.Response().Body()))
		},
		TagQueryStringParams: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Request().URI().QueryArgs().String()
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID, c.Get(fiber.HeaderXRequestID))
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func isMultipart(c *fiber.Ctx) bool {
	return len(c.Request().Header.MultipartFormBoundary()) > 0
}

func cut(value string) string {
	if len(value) > maxBodyLen {
		return value[:maxBodyLen] + "..."
	}
	return value
}
