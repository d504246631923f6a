package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	"job-tracker-backend/lib/tag"
	apimodels "job-tracker-backend/models/api"
	tagapimodels "job-tracker-backend/models/api/tag"
)

type tagApiController struct {
	controllers.BaseAPIController
}

func InitTagApiRouters(app *fiber.App) {
	controller := tagApiController{}
	app.Route("tags", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Post("merge", controller.merge)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.rename)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Список тегов
// @Tags Теги
// @Description Теги с количеством использований
// @Success 200 {object} apimodels.Response{data=[]tagapimodels.TagView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tags [get]
func (c *tagApiController) list(ctx *fiber.Ctx) error {
	list, err := tag.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка тегов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание тега
// @Tags Теги
// @Description Создание, повторное имя возвращает существующий тег
// @Param	body body	 tagapimodels.TagData	true	"request body"
// @Success 200 {object} apimodels.Response{data=tagapimodels.TagView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tags [post]
func (c *tagApiController) create(ctx *fiber.Ctx) error {
	var payload tagapimodels.TagData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := tag.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания тега")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Переименование тега
// @Tags Теги
// @Description Переименование тега
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 tagapimodels.TagData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tags/{id} [put]
func (c *tagApiController) rename(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload tagapimodels.TagData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := tag.Instance.Rename(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка переименования тега")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление тега
// @Tags Теги
// @Description Удаление тега со снятием его со всех заявок
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tags/{id} [delete]
func (c *tagApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := tag.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления тега")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Слияние тегов
// @Tags Теги
// @Description Перенос связей с исходного тега на целевой и удаление исходного
// @Param	body body	 tagapimodels.MergeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/tags/merge [post]
func (c *tagApiController) merge(ctx *fiber.Ctx) error {
	var payload tagapimodels.MergeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := tag.Instance.Merge(payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка слияния тегов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
