package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/application/staffing"
	"github.com/dguzman/staffing-api/internal/domain"
)

// ReportHandler maneja los reportes de pagos, presencia y estadísticas.
type ReportHandler struct {
	uc *staffing.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *staffing.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// filterFromQuery lee el rango de fechas y la empresa opcional de la query.
func filterFromQuery(c *fiber.Ctx) (dto.ReportFilter, string) {
	f := dto.ReportFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		CompanyID: c.Query("company_id"),
	}
	return f, validationMessage(f)
}

// Payments godoc
// @Summary      Reporte de pagos por empleado (solo asignaciones PRESENTE)
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  true   "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "Fin del período (YYYY-MM-DD)"
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Success      200  {array}   dto.EmployeePayment
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/daily-requests/reports/payments [get]
func (h *ReportHandler) Payments(c *fiber.Ctx) error {
	f, msg := filterFromQuery(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Payments(c.Context(), f)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PaymentsPDF godoc
// @Summary      Exportar el reporte de pagos en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        start_date  query  string  true   "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "Fin del período (YYYY-MM-DD)"
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/daily-requests/reports/payments/pdf [get]
func (h *ReportHandler) PaymentsPDF(c *fiber.Ctx) error {
	f, msg := filterFromQuery(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	pdfBytes, err := h.uc.PaymentsPDF(c.Context(), f)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "exportación PDF no habilitada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_pagos_`+f.StartDate+"_"+f.EndDate+`.pdf"`)
	return c.Send(pdfBytes)
}

// Attendance godoc
// @Summary      Reporte de presencia (una fila por asignación del período)
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  true   "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "Fin del período (YYYY-MM-DD)"
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Success      200  {array}   dto.AttendanceRecord
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/daily-requests/reports/attendance [get]
func (h *ReportHandler) Attendance(c *fiber.Ctx) error {
	f, msg := filterFromQuery(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Attendance(c.Context(), f)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DashboardStats godoc
// @Summary      Solicitudes por empresa en el período
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  true   "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "Fin del período (YYYY-MM-DD)"
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Success      200  {array}   dto.CompanyRequestStat
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/daily-requests/stats/dashboard [get]
func (h *ReportHandler) DashboardStats(c *fiber.Ctx) error {
	f, msg := filterFromQuery(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.DashboardStats(c.Context(), f)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AttendanceStats godoc
// @Summary      Asignaciones por empresa y estado en el período
// @Tags         reports
// @Produce      json
// @Param        start_date  query  string  true   "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "Fin del período (YYYY-MM-DD)"
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Success      200  {array}   dto.AttendanceStat
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/daily-requests/stats/attendance [get]
func (h *ReportHandler) AttendanceStats(c *fiber.Ctx) error {
	f, msg := filterFromQuery(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.AttendanceStats(c.Context(), f)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
