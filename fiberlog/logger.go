package fiberlog

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) != 0 {
		cfg = config[0]
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions || skipped(cfg.SkipPaths, c.Path()) {
			return c.Next()
		}
		d := &data{
			pid:   pid,
			start: time.Now(),
		}
		err := c.Next()
		d.end = time.Now()

		entry := logger.WithFields(getLogrusFields(ftm, c, d))
		message := getMessage(c)
		status := c.Response().StatusCode()
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error(message)
		case status >= fiber.StatusBadRequest:
			entry.Warn(message)
		default:
			entry.Info(message)
		}
		return err
	}
}

func skipped(prefixes []string, path string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func getMessage(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" {
		return "запрос api " + c.Method() + " " + r.Path
	}
	return "запрос api"
}
