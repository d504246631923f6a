package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/controllers"
	"job-tracker-backend/lib/resume"
	apimodels "job-tracker-backend/models/api"
	resumeapimodels "job-tracker-backend/models/api/resume"
)

type resumeApiController struct {
	controllers.BaseAPIController
}

func InitResumeApiRouters(app *fiber.App) {
	controller := resumeApiController{}
	app.Route("resumes", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.upload)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("download", controller.download)
		})
	})
}

// @Summary Список резюме
// @Tags Резюме
// @Description Версии резюме, файлы лежат в хранилище отдельно
// @Success 200 {object} apimodels.Response{data=[]resumeapimodels.ResumeView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resumes [get]
func (c *resumeApiController) list(ctx *fiber.Ctx) error {
	list, err := resume.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Загрузка резюме
// @Tags Резюме
// @Description Загрузка файла новой версии резюме
// @Param   file			formData	file 	true 	"file to upload"
// @Param   version_name	formData	string 	true 	"название версии"
// @Param   notes			formData	string 	false 	"заметки"
// @Success 200 {object} apimodels.Response{data=resumeapimodels.ResumeView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resumes [post]
func (c *resumeApiController) upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Ошибка при чтении файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := resumeapimodels.ResumeData{
		VersionName: ctx.FormValue("version_name"),
		Notes:       ctx.FormValue("notes"),
	}
	view, err := resume.Instance.Upload(ctx.UserContext(), data, file.Filename, file.Header.Get("Content-Type"), fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Получение по ИД
// @Tags Резюме
// @Description Метаданные версии резюме
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=resumeapimodels.ResumeView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resumes/{id} [get]
func (c *resumeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := resume.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Скачивание файла
// @Tags Резюме
// @Description Файл резюме из хранилища
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resumes/{id}/download [get]
func (c *resumeApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, contentType, content, err := resume.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания резюме")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Set("Content-Type", contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(content)
}

// @Summary Обновление резюме
// @Tags Резюме
// @Description Обновление названия версии и заметок
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 resumeapimodels.ResumeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resumes/{id} [put]
func (c *resumeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload resumeapimodels.ResumeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := resume.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление резюме
// @Tags Резюме
// @Description Удаление версии резюме вместе с файлом
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resumes/{id} [delete]
func (c *resumeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := resume.Instance.Delete(ctx.UserContext(), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
