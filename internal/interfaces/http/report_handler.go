package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/application/usecase"
	"github.com/jhoicas/kantin-api/internal/domain"
)

// ReportHandler maneja los reportes de transacciones (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// List godoc
// @Summary      Reporte de transacciones con resumen
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from        query  string  false  "Fecha inicial YYYY-MM-DD (por defecto hoy)"
// @Param        to          query  string  false  "Fecha final YYYY-MM-DD (por defecto hoy)"
// @Param        department  query  string  false  "Filtrar por departamento"
// @Param        status      query  string  false  "SUCCESS o FAILURE"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/transactions [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var filter dto.ReportFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(filter)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas en formato YYYY-MM-DD; status SUCCESS o FAILURE"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el reporte de transacciones
// @Tags         reports
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        format      query  string  false  "csv, xlsx o pdf (por defecto csv)"
// @Param        from        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to          query  string  false  "Fecha final YYYY-MM-DD"
// @Param        department  query  string  false  "Filtrar por departamento"
// @Param        status      query  string  false  "SUCCESS o FAILURE"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/transactions/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	var filter dto.ReportFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	format := c.Query("format", usecase.ExportCSV)
	file, err := h.uc.Export(c.Context(), filter, format)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato csv, xlsx o pdf; fechas YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}
