package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una asignación. Conjunto cerrado; se permite corregir entre
// cualquier par de estados reconocidos (ej. PRESENTE marcado por error → FALTOU).
const (
	AssignmentStatusAsignado  = "ASIGNADO"
	AssignmentStatusPresente  = "PRESENTE"
	AssignmentStatusFaltou    = "FALTOU"
	AssignmentStatusCancelado = "CANCELADO"
)

var assignmentStatuses = map[string]struct{}{
	AssignmentStatusAsignado:  {},
	AssignmentStatusPresente:  {},
	AssignmentStatusFaltou:    {},
	AssignmentStatusCancelado: {},
}

// IsValidAssignmentStatus informa si el valor pertenece al conjunto cerrado de estados.
func IsValidAssignmentStatus(s string) bool {
	_, ok := assignmentStatuses[s]
	return ok
}

// WorkShift es un renglón de una solicitud: una franja horaria con pago y cupo.
// Quantity es el cupo duro: nunca puede haber más asignaciones que Quantity,
// sin importar el estado de cada asignación.
type WorkShift struct {
	ID                 string
	RequestID          string
	StartTime          time.Time
	EndTime            time.Time
	PaymentAmount      decimal.Decimal // > 0
	Quantity           int             // > 0, cupo máximo de asignaciones
	HasDiscount        bool
	DiscountPercentage decimal.Decimal // 0–100; 0 si HasDiscount es false
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedBy          string
	UpdatedBy          string

	Assignments []ShiftAssignment
}

// ShiftAssignment vincula un empleado (User) con un turno.
// Invariante: a lo sumo una asignación por par (shift_id, employee_id).
type ShiftAssignment struct {
	ID         string
	ShiftID    string
	EmployeeID string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreatedBy  string
	UpdatedBy  string

	// Perfil del empleado, poblado en lecturas para evitar un segundo lookup.
	EmployeeFirstName string
	EmployeeLastName  string
}
