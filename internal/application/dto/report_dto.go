package dto

import "time"

// ReportFilter filtros comunes de reportes: rango de fechas inclusivo y
// empresa opcional.
type ReportFilter struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
	CompanyID string `query:"company_id"`
}

// EmployeePayment total a pagar a un empleado en el período (solo PRESENTE).
type EmployeePayment struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	TotalAmount  float64 `json:"total_amount"`
}

// AttendanceRecord una asignación dentro del período, para auditoría de presencia.
type AttendanceRecord struct {
	AssignmentID string    `json:"assignment_id"`
	RequestID    string    `json:"request_id"`
	RequestDate  string    `json:"request_date"` // YYYY-MM-DD
	CompanyName  string    `json:"company_name"`
	ShiftID      string    `json:"shift_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Status       string    `json:"status"`
}

// CompanyRequestStat solicitudes por empresa (gráfico del dashboard).
type CompanyRequestStat struct {
	CompanyName  string `json:"company_name"`
	RequestCount int    `json:"request_count"`
}

// AttendanceStat asignaciones por empresa y estado (gráfico de presencia).
type AttendanceStat struct {
	CompanyName string `json:"company_name"`
	Status      string `json:"status"`
	Count       int    `json:"count"`
}
