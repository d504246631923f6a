package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	"job-tracker-backend/lib/calendar"
	apimodels "job-tracker-backend/models/api"
)

type calendarApiController struct {
	controllers.BaseAPIController
}

func InitCalendarApiRouters(app *fiber.App) {
	controller := calendarApiController{}
	app.Route("calendar", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary События календаря
// @Tags Календарь
// @Description Подачи, напоминания, интервью и дедлайны, извлечённые из заявок
// @Success 200 {object} apimodels.Response{data=[]calendarapimodels.CalendarEvent}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/calendar [get]
func (c *calendarApiController) list(ctx *fiber.Ctx) error {
	list, err := calendar.Instance.GetEvents()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения событий календаря")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
