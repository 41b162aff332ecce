package repository

import "github.com/dguzman/staffing-api/internal/domain/entity"

// DailyRequestRepository puerto de persistencia para la cabecera de solicitudes.
type DailyRequestRepository interface {
	Create(req *entity.DailyRequest) error
	GetByID(id string) (*entity.DailyRequest, error)
	// GetWithShifts devuelve la solicitud con sus turnos y las asignaciones
	// de cada turno (con nombre del empleado poblado).
	GetWithShifts(id string) (*entity.DailyRequest, error)
	// List ordena por request_date DESC. companyID vacío = todas las empresas.
	List(limit, offset int, companyID string) ([]*entity.DailyRequest, error)
	Update(req *entity.DailyRequest) error
	// Delete borra la solicitud; los turnos y asignaciones caen en cascada
	// (FK ON DELETE CASCADE). Devuelve false si la solicitud no existía.
	Delete(id string) (bool, error)
}

// WorkShiftRepository puerto de persistencia para turnos.
type WorkShiftRepository interface {
	Create(shift *entity.WorkShift) error
	GetByID(id string) (*entity.WorkShift, error)
	// GetForUpdate bloquea la fila del turno (SELECT FOR UPDATE). Solo tiene
	// sentido sobre un repositorio atado a una transacción.
	GetForUpdate(id string) (*entity.WorkShift, error)
	ListByRequest(requestID string) ([]*entity.WorkShift, error)
}

// ShiftAssignmentRepository puerto de persistencia para asignaciones.
type ShiftAssignmentRepository interface {
	Create(a *entity.ShiftAssignment) error
	GetByID(id string) (*entity.ShiftAssignment, error)
	GetByShiftAndEmployee(shiftID, employeeID string) (*entity.ShiftAssignment, error)
	// CountByShift cuenta en vivo las asignaciones del turno, sin importar su
	// estado. El cupo nunca se cachea: siempre se deriva de este conteo.
	CountByShift(shiftID string) (int, error)
	ListByShift(shiftID string) ([]*entity.ShiftAssignment, error)
	Update(a *entity.ShiftAssignment) error
	// Delete borra la fila; libera un cupo implícitamente. Devuelve false si no existía.
	Delete(id string) (bool, error)
}
