package apiv1

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/controllers"
	csvexport "job-tracker-backend/lib/export/csv"
	xlsexport "job-tracker-backend/lib/export/xls"
	apimodels "job-tracker-backend/models/api"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Get("csv", controller.exportCsv)
		router.Get("json", controller.exportJson)
		router.Get("xlsx", controller.exportXlsx)
	})
	app.Post("import/csv", controller.importCsv)
}

// @Summary Выгрузка в CSV
// @Tags Экспорт
// @Description Все заявки в CSV, колонки в фиксированном порядке
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/csv [get]
func (c *exportApiController) exportCsv(ctx *fiber.Ctx) error {
	data, err := csvexport.Instance.ExportCsv()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки заявок в CSV")
	}
	fileName := fmt.Sprintf("applications-%v.csv", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Выгрузка в JSON
// @Tags Экспорт
// @Description Все заявки в JSON
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/json [get]
func (c *exportApiController) exportJson(ctx *fiber.Ctx) error {
	data, err := csvexport.Instance.ExportJson()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки заявок в JSON")
	}
	fileName := fmt.Sprintf("applications-%v.json", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/json")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Выгрузка в Excel
// @Tags Экспорт
// @Description Все заявки одним листом Excel
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/xlsx [get]
func (c *exportApiController) exportXlsx(ctx *fiber.Ctx) error {
	data, err := xlsexport.Instance.ExportApplications()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки заявок в Excel")
	}
	fileName := fmt.Sprintf("applications-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Импорт из CSV
// @Tags Экспорт
// @Description Создание заявок из строк CSV, некорректные строки пропускаются
// @Param   file		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/import/csv [post]
func (c *exportApiController) importCsv(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла импорта")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Ошибка при чтении файла импорта")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	imported, err := csvexport.Instance.ImportCsv(fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка импорта заявок из CSV")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(imported))
}
