package dto

import "time"

// WorkShiftInput un turno dentro de la creación de una solicitud.
type WorkShiftInput struct {
	StartTime          time.Time `json:"start_time" validate:"required"`
	EndTime            time.Time `json:"end_time" validate:"required"`
	PaymentAmount      float64   `json:"payment_amount" validate:"required,gt=0"`
	Quantity           int       `json:"quantity" validate:"required,gt=0"`
	HasDiscount        bool      `json:"has_discount"`
	DiscountPercentage float64   `json:"discount_percentage" validate:"min=0,max=100"`
}

// CreateDailyRequestRequest entrada para crear una solicitud con sus turnos.
type CreateDailyRequestRequest struct {
	CompanyID   string           `json:"company_id" validate:"required"`
	RequestDate string           `json:"request_date" validate:"required,datetime=2006-01-02"`
	Shifts      []WorkShiftInput `json:"shifts" validate:"required,min=1,dive"`
}

// UpdateRequestStatusRequest cambio de estado de una solicitud.
type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateAssignmentRequest entrada para escalar un empleado a un turno.
type CreateAssignmentRequest struct {
	ShiftID    string `json:"shift_id" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
}

// UpdateAssignmentStatusRequest cambio de estado de una asignación.
type UpdateAssignmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignmentResponse salida de una asignación, con el perfil del empleado
// poblado para que el caller pueda renderizar sin un segundo lookup.
type AssignmentResponse struct {
	ID                string    `json:"id"`
	ShiftID           string    `json:"shift_id"`
	EmployeeID        string    `json:"employee_id"`
	Status            string    `json:"status"`
	EmployeeFirstName string    `json:"employee_first_name"`
	EmployeeLastName  string    `json:"employee_last_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// WorkShiftResponse salida de un turno con sus asignaciones.
type WorkShiftResponse struct {
	ID                 string               `json:"id"`
	RequestID          string               `json:"request_id"`
	StartTime          time.Time            `json:"start_time"`
	EndTime            time.Time            `json:"end_time"`
	PaymentAmount      float64              `json:"payment_amount"`
	Quantity           int                  `json:"quantity"`
	HasDiscount        bool                 `json:"has_discount"`
	DiscountPercentage float64              `json:"discount_percentage"`
	Assignments        []AssignmentResponse `json:"assignments"`
}

// DailyRequestResponse salida de una solicitud.
type DailyRequestResponse struct {
	ID          string              `json:"id"`
	CompanyID   string              `json:"company_id"`
	RequestDate string              `json:"request_date"` // YYYY-MM-DD
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Shifts      []WorkShiftResponse `json:"shifts"`
}

// DailyRequestListResponse lista paginada de solicitudes (sin turnos anidados).
type DailyRequestListResponse struct {
	Items []DailyRequestResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
