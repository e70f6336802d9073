package apiv1

import (
	"interview-scheduler/controllers"
	eventhandler "interview-scheduler/lib/event"
	stephandler "interview-scheduler/lib/recruitment-step"
	"interview-scheduler/middleware"
	apimodels "interview-scheduler/models/api"
	eventapimodels "interview-scheduler/models/api/event"
	stepapimodels "interview-scheduler/models/api/step"

	"github.com/gofiber/fiber/v2"
)

type stepApiController struct {
	controllers.BaseAPIController
}

func InitStepApiRouters(app *fiber.App) {
	controllers.RegisterErrorStatus(fiber.StatusNotFound,
		stephandler.ErrNotFound,
		stephandler.ErrCandidateNotFound,
		stephandler.ErrStepTypeNotFound,
		eventhandler.ErrStepNotFound,
	)
	controllers.RegisterErrorStatus(fiber.StatusBadRequest, stephandler.ErrHasEvent, eventhandler.ErrStepHasEvent)
	controller := stepApiController{}
	app.Route("step", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Post("event", controller.createEvent)
		})
	})
}

// @Summary Создание
// @Tags Этапы подбора
// @Description Добавление этапа подбора кандидату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 stepapimodels.StepData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step [post]
func (c *stepApiController) create(ctx *fiber.Ctx) error {
	var payload stepapimodels.StepData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := stephandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления этапа подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение по ИД
// @Tags Этапы подбора
// @Description Этап подбора со статусом и событием
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   Accept-Language		header		string	false	"Локаль подписей статусов"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=stepapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id} [get]
func (c *stepApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := stephandler.Instance.Get(id, c.GetLocale(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения этапа подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Этапы подбора
// @Description Удаление, этап с назначенным событием не удаляется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id} [delete]
func (c *stepApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = stephandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления этапа подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Назначить событие
// @Tags Этапы подбора
// @Description Назначение собеседования по этапу, выбранным интервьюерам уходит приглашение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 eventapimodels.EventData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/step/{id}/event [post]
func (c *stepApiController) createEvent(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload eventapimodels.EventData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	eventID, err := eventhandler.Instance.Create(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения события")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(eventID))
}
