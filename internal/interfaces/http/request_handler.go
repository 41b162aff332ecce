package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/application/staffing"
	"github.com/dguzman/staffing-api/internal/domain"
)

// RequestHandler maneja las peticiones HTTP para solicitudes diarias.
type RequestHandler struct {
	uc *staffing.RequestUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *staffing.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud diaria con turnos
// @Tags         daily-requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDailyRequestRequest  true  "Solicitud con al menos un turno"
// @Success      201   {object}  dto.DailyRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/daily-requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDailyRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validationMessage(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "turno con monto o cantidad inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud con turnos y asignaciones
// @Tags         daily-requests
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.DailyRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/daily-requests/{id} [get]
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         daily-requests
// @Produce      json
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Success      200  {object}  dto.DailyRequestListResponse
// @Router       /api/daily-requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset, c.Query("company_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una solicitud
// @Tags         daily-requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la solicitud"
// @Param        body  body  dto.UpdateRequestStatusRequest true  "Nuevo estado"
// @Success      200   {object}  dto.DailyRequestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/daily-requests/{id}/status [put]
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateRequestStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validationMessage(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.UpdateStatus(id, in.Status, GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		if err == domain.ErrInvalidStatus {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado inválido o transición no permitida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar solicitud (turnos y asignaciones caen en cascada)
// @Tags         daily-requests
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/daily-requests/{id} [delete]
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
