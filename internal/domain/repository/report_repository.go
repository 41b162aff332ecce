package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRow es una asignación PRESENTE con los datos del turno necesarios
// para calcular el pago efectivo (el cálculo vive en domain/staffing, no en SQL).
type PaymentRow struct {
	EmployeeID         string
	FirstName          string
	LastName           string
	PaymentAmount      decimal.Decimal
	HasDiscount        bool
	DiscountPercentage decimal.Decimal
}

// AttendanceRow es una asignación dentro del rango consultado, con datos
// identificatorios de turno y empleado para auditoría de presencia.
type AttendanceRow struct {
	AssignmentID string
	RequestID    string
	RequestDate  time.Time
	CompanyID    string
	CompanyName  string
	ShiftID      string
	StartTime    time.Time
	EndTime      time.Time
	EmployeeID   string
	FirstName    string
	LastName     string
	Status       string
}

// CompanyRequestCount solicitudes por empresa (dashboard).
type CompanyRequestCount struct {
	CompanyName  string
	RequestCount int
}

// CompanyStatusCount asignaciones por empresa y estado (dashboard de presencia).
type CompanyStatusCount struct {
	CompanyName string
	Status      string
	Count       int
}

// ReportRepository consultas de solo lectura que cruzan
// asignaciones → turnos → solicitudes → empleados.
// companyID vacío = sin filtro de empresa. Las fechas son inclusivas.
type ReportRepository interface {
	PresentAssignments(ctx context.Context, start, end time.Time, companyID string) ([]PaymentRow, error)
	Attendance(ctx context.Context, start, end time.Time, companyID string) ([]AttendanceRow, error)
	RequestCountByCompany(ctx context.Context, start, end time.Time, companyID string) ([]CompanyRequestCount, error)
	AttendanceStatusByCompany(ctx context.Context, start, end time.Time, companyID string) ([]CompanyStatusCount, error)
}
