package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	"job-tracker-backend/lib/stats"
	apimodels "job-tracker-backend/models/api"
	statsapimodels "job-tracker-backend/models/api/stats"
)

type statsApiController struct {
	controllers.BaseAPIController
}

func InitStatsApiRouters(app *fiber.App) {
	controller := statsApiController{}
	app.Route("stats", func(router fiber.Router) {
		router.Get("", controller.get)
	})
}

// @Summary Аналитика
// @Tags Аналитика
// @Description Сводная аналитика по заявкам, опционально за период по дате добавления
// @Param   from		query		string	false	"начало периода, ГГГГ-ММ-ДД"
// @Param   to			query		string	false	"конец периода, ГГГГ-ММ-ДД"
// @Success 200 {object} apimodels.Response{data=statsapimodels.Stats}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/stats [get]
func (c *statsApiController) get(ctx *fiber.Ctx) error {
	dateRange := statsapimodels.DateRange{
		From: ctx.Query("from"),
		To:   ctx.Query("to"),
	}
	if err := dateRange.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := stats.Instance.GetStats(dateRange)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расчёта аналитики")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
