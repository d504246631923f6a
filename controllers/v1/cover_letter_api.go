package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	coverletter "job-tracker-backend/lib/cover-letter"
	apimodels "job-tracker-backend/models/api"
	coverletterapimodels "job-tracker-backend/models/api/cover-letter"
)

type coverLetterApiController struct {
	controllers.BaseAPIController
}

func InitCoverLetterApiRouters(app *fiber.App) {
	controller := coverLetterApiController{}
	app.Route("cover_letters", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("pdf", controller.exportPdf)
		})
	})
}

// @Summary Список писем
// @Tags Сопроводительные письма
// @Description Письма заявки
// @Param   application_id		query		string	true	"ИД заявки"
// @Success 200 {object} apimodels.Response{data=[]coverletterapimodels.CoverLetterView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cover_letters [get]
func (c *coverLetterApiController) list(ctx *fiber.Ctx) error {
	applicationID := ctx.Query("application_id")
	if applicationID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указана заявка"))
	}
	list, err := coverletter.Instance.ListFor(applicationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка писем")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание письма
// @Tags Сопроводительные письма
// @Description Сохранение текста письма для заявки
// @Param	body body	 coverletterapimodels.CoverLetterData	true	"request body"
// @Success 200 {object} apimodels.Response{data=coverletterapimodels.CoverLetterView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cover_letters [post]
func (c *coverLetterApiController) create(ctx *fiber.Ctx) error {
	var payload coverletterapimodels.CoverLetterData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := coverletter.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания письма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Получение по ИД
// @Tags Сопроводительные письма
// @Description Получение по ИД
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=coverletterapimodels.CoverLetterView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cover_letters/{id} [get]
func (c *coverLetterApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := coverletter.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения письма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Обновление письма
// @Tags Сопроводительные письма
// @Description Правка текста, отметка о генерации снимается
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 coverletterapimodels.CoverLetterData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cover_letters/{id} [put]
func (c *coverLetterApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload coverletterapimodels.CoverLetterData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := coverletter.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения письма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление письма
// @Tags Сопроводительные письма
// @Description Удаление письма
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cover_letters/{id} [delete]
func (c *coverLetterApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := coverletter.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления письма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузка письма в PDF
// @Tags Сопроводительные письма
// @Description Письмо одним PDF файлом для отправки
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cover_letters/{id}/pdf [get]
func (c *coverLetterApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, data, err := coverletter.Instance.ExportPdf(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки письма в PDF")
	}
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
