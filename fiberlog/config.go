package fiberlog

import "github.com/sirupsen/logrus"

// Config is config for middleware
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// SkipPaths запросы с этими префиксами пути не логируются
	SkipPaths []string
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
