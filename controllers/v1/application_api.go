package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	"job-tracker-backend/lib/application"
	statushistoryhandler "job-tracker-backend/lib/status-history"
	"job-tracker-backend/lib/transition"
	"job-tracker-backend/models"
	apimodels "job-tracker-backend/models/api"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Post("bulk_status", controller.bulkStatus)
		router.Post("bulk_delete", controller.bulkDelete)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("status", controller.changeStatus)
			idRoute.Get("history", controller.history)
		})
	})
}

// @Summary Список заявок
// @Tags Заявки
// @Description Список заявок с фильтрами и сортировкой
// @Param   status		query		string	false	"фильтр по статусу"
// @Param   priority	query		string	false	"фильтр по приоритету"
// @Param   work_mode	query		string	false	"фильтр по формату работы"
// @Param   tag			query		string	false	"фильтр по тегу"
// @Param   search		query		string	false	"поиск по компании/позиции/заметкам/тегам"
// @Param   sort		query		string	false	"поле:направление, например date_added:desc"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [get]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	filter := dbmodels.ApplicationFilter{
		Status:   models.ApplicationStatus(ctx.Query("status")),
		Priority: models.Priority(ctx.Query("priority")),
		WorkMode: models.WorkMode(ctx.Query("work_mode")),
		Tag:      ctx.Query("tag"),
		Search:   ctx.Query("search"),
		Sort:     ctx.Query("sort"),
	}
	list, err := application.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание заявки
// @Tags Заявки
// @Description Создание заявки
// @Param	body body	 applicationapimodels.ApplicationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Получение по ИД
// @Tags Заявки
// @Description Заявка с тегами и журналом статусов
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Обновление заявки
// @Tags Заявки
// @Description Частичное обновление, смена статуса идёт через движок переходов
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.ApplicationUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [put]
func (c *applicationApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.ApplicationUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Удаление заявки
// @Tags Заявки
// @Description Удаление вместе с журналом, письмами и связями тегов
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [delete]
func (c *applicationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := application.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса
// @Tags Заявки
// @Description Перевод заявки в новый статус с записью в журнал
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.TransitionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/status [put]
func (c *applicationApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.TransitionRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := transition.Instance.RequestTransition(id, payload.Status, payload.OperatorValue)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationapimodels.ConvertExt(*rec)))
}

// @Summary Журнал статусов
// @Tags Заявки
// @Description Журнал переходов заявки в хронологическом порядке
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.StatusHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/history [get]
func (c *applicationApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := statushistoryhandler.Instance.ListFor(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала статусов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Массовая смена статуса
// @Tags Заявки
// @Description Перевод набора заявок в один статус, несуществующие пропускаются
// @Param	body body	 applicationapimodels.BulkStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/bulk_status [post]
func (c *applicationApiController) bulkStatus(ctx *fiber.Ctx) error {
	var payload applicationapimodels.BulkStatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	updated, err := transition.Instance.RequestBulkTransition(payload.IDs, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка массовой смены статуса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(updated))
}

// @Summary Массовое удаление
// @Tags Заявки
// @Description Удаление набора заявок
// @Param	body body	 applicationapimodels.BulkDeleteRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/bulk_delete [post]
func (c *applicationApiController) bulkDelete(ctx *fiber.Ctx) error {
	var payload applicationapimodels.BulkDeleteRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	deleted, err := application.Instance.DeleteMany(payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка массового удаления заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(deleted))
}
