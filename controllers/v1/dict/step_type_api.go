package dict

import (
	"interview-scheduler/controllers"
	steptypeprovider "interview-scheduler/lib/dicts/step-type"
	apimodels "interview-scheduler/models/api"
	dictapimodels "interview-scheduler/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type stepTypeDictApiController struct {
	controllers.BaseAPIController
}

func InitStepTypeDictApiRouters(app *fiber.App) {
	controllers.RegisterErrorStatus(fiber.StatusNotFound, steptypeprovider.ErrNotFound)
	controllers.RegisterErrorStatus(fiber.StatusBadRequest, steptypeprovider.ErrDuplicate, steptypeprovider.ErrInUse)
	controller := stepTypeDictApiController{}
	app.Route("step_type", func(router fiber.Router) {
		router.Post("find", controller.findByName)
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Get(":id", controller.get)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Создание
// @Tags Справочник. Типы этапов подбора
// @Description Создание
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.StepTypeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/step_type [post]
func (c *stepTypeDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.StepTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := steptypeprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления типа этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Справочник. Типы этапов подбора
// @Description Обновление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 dictapimodels.StepTypeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/step_type/{id} [put]
func (c *stepTypeDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.StepTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = steptypeprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения типа этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Справочник. Типы этапов подбора
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.StepTypeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/step_type/{id} [get]
func (c *stepTypeDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := steptypeprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения типа этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Справочник. Типы этапов подбора
// @Description Удаление, тип используемый в этапах не удаляется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/step_type/{id} [delete]
func (c *stepTypeDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = steptypeprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления типа этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Поиск по названию
// @Tags Справочник. Типы этапов подбора
// @Description Поиск по названию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.StepTypeFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.StepTypeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/step_type/find [post]
func (c *stepTypeDictApiController) findByName(ctx *fiber.Ctx) error {
	var payload dictapimodels.StepTypeFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := steptypeprovider.Instance.FindByName(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка типов этапов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
