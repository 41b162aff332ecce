package entity

import "time"

// Estados de una solicitud diaria. Conjunto cerrado: cualquier otro valor se rechaza.
const (
	RequestStatusPendiente  = "PENDIENTE"
	RequestStatusConfirmada = "CONFIRMADA"
	RequestStatusFinalizada = "FINALIZADA"
	RequestStatusCancelada  = "CANCELADA"
)

// requestTransitions tabla de transiciones permitidas entre estados de solicitud.
// FINALIZADA y CANCELADA son terminales.
var requestTransitions = map[string][]string{
	RequestStatusPendiente:  {RequestStatusConfirmada, RequestStatusCancelada},
	RequestStatusConfirmada: {RequestStatusFinalizada, RequestStatusCancelada},
	RequestStatusFinalizada: {},
	RequestStatusCancelada:  {},
}

// IsValidRequestStatus informa si el valor pertenece al conjunto cerrado de estados.
func IsValidRequestStatus(s string) bool {
	_, ok := requestTransitions[s]
	return ok
}

// CanTransitionRequest informa si la solicitud puede pasar de `from` a `to`.
func CanTransitionRequest(from, to string) bool {
	for _, allowed := range requestTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// DailyRequest es la cabecera de una solicitud de personal de una empresa
// para una fecha concreta. Posee sus turnos (borrado en cascada).
type DailyRequest struct {
	ID          string
	CompanyID   string
	RequestDate time.Time // solo fecha, sin hora
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
	UpdatedBy   string

	Shifts []WorkShift
}
