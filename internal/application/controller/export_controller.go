package controller

import (
	"fmt"
	"net/http"

	"weather-api/internal/domain/usecase/export"

	"github.com/labstack/echo/v4"
)

type ExportController struct {
	api     *echo.Group
	useCase export.UseCase
}

func NewExportController(api *echo.Group, useCase export.UseCase) *ExportController {
	return &ExportController{api: api, useCase: useCase}
}

// InitExportRoutes initializes export routes
func (controller *ExportController) InitExportRoutes() {
	controller.api.GET("/export/:format", controller.Export)
}

// Export godoc
// @Summary Export stored documents
// @Description Download every stored document as json, csv (one row per forecast entry) or pdf
// @Tags export
// @Produce json
// @Produce text/csv
// @Produce application/pdf
// @Param format path string true "Export format" Enums(json, csv, pdf)
// @Success 200 {file} file "Exported documents"
// @Failure 400 {object} map[string]string "Unsupported export format"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /export/{format} [get]
func (controller *ExportController) Export(c echo.Context) error {
	file, err := controller.useCase.Export(c.Request().Context(), c.Param("format"))
	if err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
