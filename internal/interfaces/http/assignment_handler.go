package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/application/staffing"
	"github.com/dguzman/staffing-api/internal/domain"
)

// AssignmentHandler maneja las peticiones HTTP para asignaciones de turno.
type AssignmentHandler struct {
	uc *staffing.AssignmentUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *staffing.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// Create godoc
// @Summary      Escalar empleado a un turno
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "Turno y empleado"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/daily-requests/assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validationMessage(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(c.Context(), in, GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SHIFT_NOT_FOUND", Message: "el turno no existe"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "el empleado no existe"})
		case domain.ErrShiftFull:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SHIFT_FULL", Message: "el turno no tiene vacantes disponibles"})
		case domain.ErrAlreadyAssigned:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ASSIGNED", Message: "el empleado ya está asignado a este turno"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una asignación
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la asignación"
// @Param        body  body  dto.UpdateAssignmentStatusRequest true  "Nuevo estado"
// @Success      200   {object}  dto.AssignmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/daily-requests/assignments/{id}/status [put]
func (h *AssignmentHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAssignmentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validationMessage(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.UpdateStatus(id, in.Status, GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asignación no encontrada"})
		}
		if err == domain.ErrInvalidStatus {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de asignación no reconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Quitar empleado de un turno
// @Tags         assignments
// @Param        id  path  string  true  "ID de la asignación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/daily-requests/assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asignación no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
