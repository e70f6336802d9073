package apiv1

import (
	"interview-scheduler/controllers"
	feedbackhandler "interview-scheduler/lib/feedback"
	"interview-scheduler/lib/utils/helpers"
	"interview-scheduler/middleware"
	apimodels "interview-scheduler/models/api"
	feedbackapimodels "interview-scheduler/models/api/feedback"

	"github.com/gofiber/fiber/v2"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app *fiber.App) {
	controllers.RegisterErrorStatus(fiber.StatusNotFound,
		feedbackhandler.ErrNotFound,
		feedbackhandler.ErrCandidateNotFound,
		feedbackhandler.ErrFileNotFound,
	)
	controllers.RegisterErrorStatus(fiber.StatusBadRequest, feedbackhandler.ErrForeignInterviewer)
	controller := feedbackApiController{}
	app.Route("feedback", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Post("file", controller.uploadFile)
			idRoute.Get("file", controller.getFile)
		})
	})
}

// @Summary Создание
// @Tags Отзывы
// @Description Отзыв интервьюера по кандидату, интервьюер должен участвовать в событиях кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 feedbackapimodels.FeedbackData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback [post]
func (c *feedbackApiController) create(ctx *fiber.Ctx) error {
	var payload feedbackapimodels.FeedbackData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := feedbackhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления отзыва")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Приложить файл
// @Tags Отзывы
// @Description Приложить файл к отзыву, предыдущий файл заменяется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   file				formData	file 	true 	"Файл"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/{id}/file [post]
func (c *feedbackApiController) uploadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла")
	}
	defer buffer.Close()

	contentType := helpers.GetFileContentType(file)
	err = feedbackhandler.Instance.AttachFile(ctx.UserContext(), id, file.Filename, contentType, buffer, file.Size)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения файла отзыва")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Скачать файл
// @Tags Отзывы
// @Description Скачать файл, приложенный к отзыву
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/feedback/{id}/file [get]
func (c *feedbackApiController) getFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := feedbackhandler.Instance.GetFile(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла отзыва")
	}
	ctx.Set(helpers.HeaderLogIgnore, "true")
	if file.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, file.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)
	return ctx.Send(file.Body)
}
