package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/models"
	apimodels "job-tracker-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError переводит ошибки бизнес-слоя в http статусы:
// валидация - 400, отсутствие записи - 404, недопустимый переход - 409.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	if errors.Is(err, models.ErrValidation) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if errors.Is(err, models.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	if errors.Is(err, models.ErrInvalidTransition) {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}
