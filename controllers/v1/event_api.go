package apiv1

import (
	"interview-scheduler/controllers"
	eventhandler "interview-scheduler/lib/event"
	"interview-scheduler/lib/utils/lock"
	"interview-scheduler/middleware"
	apimodels "interview-scheduler/models/api"
	eventapimodels "interview-scheduler/models/api/event"

	"github.com/gofiber/fiber/v2"
)

type eventApiController struct {
	controllers.BaseAPIController
}

func InitEventApiRouters(app *fiber.App) {
	controllers.RegisterErrorStatus(fiber.StatusNotFound, eventhandler.ErrNotFound)
	controllers.RegisterErrorStatus(fiber.StatusConflict, lock.ErrBusy)
	controller := eventApiController{}
	app.Route("event", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Получение по ИД
// @Tags События
// @Description Событие с интервьюерами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=eventapimodels.EventView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/event/{id} [get]
func (c *eventApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := eventhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения события")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление
// @Tags События
// @Description Изменение времени и места, добавление (interviewer_selections) и удаление (interviewer_deselections) интервьюеров
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 eventapimodels.EventUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/event/{id} [put]
func (c *eventApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload eventapimodels.EventUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = eventhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения события")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление
// @Tags События
// @Description Удаление события вместе с интервьюерами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/event/{id} [delete]
func (c *eventApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = eventhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления события")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
