package initializers

import (
	"interview-scheduler/fiberlog"

	log "github.com/sirupsen/logrus"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger настраивает общий логгер и возвращает конфиг логирования запросов api
func InitLogger(level string) *fiberlog.Config {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetFormatter(jsonFormatter())
	log.SetLevel(lvl)
	if err != nil {
		log.WithField("level", level).Warn("неизвестный уровень логирования, используется info")
	}

	accessLogger := log.New()
	accessLogger.SetFormatter(jsonFormatter())
	accessLogger.SetLevel(log.InfoLevel)
	return &fiberlog.Config{
		Logger: accessLogger,
		Tags: []string{
			fiberlog.RequestID,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagBody,
			fiberlog.TagResBody,
		},
		SkipPaths: []string{"/api/v1/auth/login"},
	}
}
