package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Capacitaciones-api/internal/application/dto"
	"github.com/jhoicas/Capacitaciones-api/internal/application/usecase"
)

// ReportHandler maneja las consultas de reportes de progreso (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// FunctionProgress godoc
// @Summary      Progreso de capacitación por cargo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FunctionProgressResponse
// @Router       /api/reports/functions [get]
func (h *ReportHandler) FunctionProgress(c *fiber.Ctx) error {
	out, err := h.uc.FunctionProgress(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AreaProgress godoc
// @Summary      Progreso de capacitación por área
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AreaProgressResponse
// @Router       /api/reports/areas [get]
func (h *ReportHandler) AreaProgress(c *fiber.Ctx) error {
	out, err := h.uc.AreaProgress(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// EmployeeProgress godoc
// @Summary      Progreso individual de un empleado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeProgressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/employees/{id} [get]
func (h *ReportHandler) EmployeeProgress(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.EmployeeProgress(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
	}
	return c.JSON(out)
}
