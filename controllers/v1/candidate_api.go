package apiv1

import (
	"fmt"
	"interview-scheduler/controllers"
	candidatehandler "interview-scheduler/lib/candidate"
	feedbackhandler "interview-scheduler/lib/feedback"
	stephandler "interview-scheduler/lib/recruitment-step"
	"interview-scheduler/lib/utils/helpers"
	"interview-scheduler/middleware"
	apimodels "interview-scheduler/models/api"
	candidateapimodels "interview-scheduler/models/api/candidate"
	"time"

	"github.com/gofiber/fiber/v2"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controllers.RegisterErrorStatus(fiber.StatusNotFound,
		candidatehandler.ErrNotFound,
		stephandler.ErrCandidateNotFound,
		feedbackhandler.ErrCandidateNotFound,
	)
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Get("steps", controller.steps)
			idRoute.Get("feedback", controller.feedback)
			idRoute.Get("interviewer_options", controller.interviewerOptions)
			idRoute.Route("schedule", func(scheduleRoute fiber.Router) {
				scheduleRoute.Get("", controller.schedule)
				scheduleRoute.Get("xlsx", controller.scheduleXlsx)
				scheduleRoute.Get("pdf", controller.schedulePdf)
			})
		})
	})
}

// @Summary Создание
// @Tags Кандидат
// @Description Создание
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := candidatehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Кандидат
// @Description Обновление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = candidatehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Кандидат
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := candidatehandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Кандидат
// @Description Удаление вместе с этапами, событиями, интервьюерами и отзывами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = candidatehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список
// @Tags Кандидат
// @Description Список с фильтром по имени и постраничным выводом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := candidatehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка кандидатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Этапы подбора кандидата
// @Tags Кандидат
// @Description Этапы подбора кандидата со статусами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   Accept-Language		header		string	false	"Локаль подписей статусов"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]stepapimodels.StepView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/steps [get]
func (c *candidateApiController) steps(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := stephandler.Instance.ListByCandidate(id, c.GetLocale(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения этапов подбора кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отзывы по кандидату
// @Tags Кандидат
// @Description Отзывы интервьюеров по кандидату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]feedbackapimodels.FeedbackView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/feedback [get]
func (c *candidateApiController) feedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := feedbackhandler.Instance.ListByCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения отзывов по кандидату")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Интервьюеры кандидата
// @Tags Кандидат
// @Description Варианты выбора интервьюера для отзыва: "<участник> in <тип этапа>"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   Accept-Language		header		string	false	"Локаль подписей"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.InterviewerOption}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/interviewer_options [get]
func (c *candidateApiController) interviewerOptions(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := candidatehandler.Instance.InterviewerOptions(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения интервьюеров кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary График собеседований
// @Tags Кандидат
// @Description График собеседований кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   Accept-Language		header		string	false	"Локаль подписей статусов"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.ScheduleItem}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/schedule [get]
func (c *candidateApiController) schedule(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	_, list, err := candidatehandler.Instance.Schedule(id, c.GetLocale(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения графика собеседований")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary График собеседований. Выгрузить в Excel
// @Tags Кандидат
// @Description График собеседований. Выгрузить в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/schedule/xlsx [get]
func (c *candidateApiController) scheduleXlsx(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, err := candidatehandler.Instance.ScheduleXlsx(id, c.GetLocale(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки графика собеседований в Excel")
	}
	fileName := fmt.Sprintf("schedule-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(helpers.HeaderLogIgnore, "true")
	ctx.Set(fiber.HeaderContentType, "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary График собеседований. Выгрузить в PDF
// @Tags Кандидат
// @Description График собеседований. Выгрузить в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/{id}/schedule/pdf [get]
func (c *candidateApiController) schedulePdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, err := candidatehandler.Instance.SchedulePdf(id, c.GetLocale(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки графика собеседований в PDF")
	}
	fileName := fmt.Sprintf("schedule-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set(helpers.HeaderLogIgnore, "true")
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}
