package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	"job-tracker-backend/lib/application"
	apimodels "job-tracker-backend/models/api"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsApiRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("settings", func(router fiber.Router) {
		router.Post("clear_data", controller.clearData)
	})
}

// @Summary Очистка данных
// @Tags Настройки
// @Description Полное удаление заявок, журнала, писем и тегов
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/clear_data [post]
func (c *settingsApiController) clearData(ctx *fiber.Ctx) error {
	if err := application.Instance.ClearAll(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка очистки данных")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
