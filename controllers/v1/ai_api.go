package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	aihandler "job-tracker-backend/lib/ai"
	apimodels "job-tracker-backend/models/api"
	aiapimodels "job-tracker-backend/models/api/ai"
)

type aiApiController struct {
	controllers.BaseAPIController
}

func InitAiApiRouters(app *fiber.App) {
	controller := aiApiController{}
	app.Route("ai", func(router fiber.Router) {
		router.Post("parse_job", controller.parseJob)
		router.Post("generate_cover", controller.generateCover)
		router.Post("match_score/:id", controller.matchScore)
	})
}

// @Summary Разбор вакансии
// @Tags AI
// @Description Извлечение структурированных полей заявки из сырого текста вакансии
// @Param	body body	 aiapimodels.ParseJobRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.ParsedJob}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/parse_job [post]
func (c *aiApiController) parseJob(ctx *fiber.Ctx) error {
	var payload aiapimodels.ParseJobRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := aihandler.Instance.ParseJob(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка разбора вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Генерация сопроводительного письма
// @Tags AI
// @Description Генерация текста письма по данным заявки, результат сохраняется черновиком
// @Param	body body	 aiapimodels.GenerateCoverRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.GenerateCoverResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/generate_cover [post]
func (c *aiApiController) generateCover(ctx *fiber.Ctx) error {
	var payload aiapimodels.GenerateCoverRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := aihandler.Instance.GenerateCover(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации письма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Оценка соответствия
// @Tags AI
// @Description Оценка соответствия кандидата вакансии, результат сохраняется в заявке
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=aiapimodels.MatchScoreResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai/match_score/{id} [post]
func (c *aiApiController) matchScore(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := aihandler.Instance.MatchScore(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка оценки соответствия")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
