package controllers

import (
	apimodels "interview-scheduler/models/api"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

type BaseAPIController struct{}

type errorStatus struct {
	err    error
	status int
}

var (
	errorStatusMu   sync.RWMutex
	errorStatusList []errorStatus
)

// RegisterErrorStatus задает http статус ответа для ошибок обработчиков, по умолчанию 500
func RegisterErrorStatus(status int, errs ...error) {
	errorStatusMu.Lock()
	defer errorStatusMu.Unlock()
	for _, err := range errs {
		errorStatusList = append(errorStatusList, errorStatus{err: err, status: status})
	}
}

func statusOf(err error) int {
	errorStatusMu.RLock()
	defer errorStatusMu.RUnlock()
	for _, item := range errorStatusList {
		if errors.Is(err, item.err) {
			return item.status
		}
	}
	return fiber.StatusInternalServerError
}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParamID(ctx, "id")
}

func (c *BaseAPIController) GetParamID(ctx *fiber.Ctx, param string) (string, error) {
	id := ctx.Params(param)
	if id == "" {
		return "", errors.Errorf("не указан параметр %v", param)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.Errorf("некорректный идентификатор в параметре %v", param)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// GetLocale предпочитаемая локаль из Accept-Language, пустая строка - локаль по умолчанию
func (c *BaseAPIController) GetLocale(ctx *fiber.Ctx) string {
	tags, _, err := language.ParseAcceptLanguage(ctx.Get(fiber.HeaderAcceptLanguage))
	if err != nil || len(tags) == 0 {
		return ""
	}
	base, _ := tags[0].Base()
	return base.String()
}

// SendError ошибки с зарегистрированным статусом отдаются клиенту как есть, остальные логируются и скрываются за msg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	status := statusOf(err)
	if status != fiber.StatusInternalServerError {
		logger.WithError(err).Warn(msg)
		return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(status).JSON(apimodels.NewError(msg))
}
