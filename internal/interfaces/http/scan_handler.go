package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kantin-api/internal/application/dto"
	"github.com/jhoicas/kantin-api/internal/application/usecase"
	"github.com/jhoicas/kantin-api/internal/domain"
)

// ScanHandler maneja el escaneo de códigos de barras en caja (público).
type ScanHandler struct {
	uc *usecase.ScanUseCase
}

// NewScanHandler construye el handler.
func NewScanHandler(uc *usecase.ScanUseCase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// Scan godoc
// @Summary      Registrar un escaneo de código de barras
// @Description  Canjea una comida si el empleado tiene cupo; siempre registra la transacción (SUCCESS o FAILURE).
// @Tags         scan
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "Código escaneado"
// @Success      200   {object}  dto.ScanResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Scan(c.Context(), in.BarcodeID)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode_id es requerido"})
		case domain.ErrMenuNotConfigured:
			return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{Code: "MENU_NOT_CONFIGURED", Message: "no hay menú configurado para hoy"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
