package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura que cruzan
// asignaciones → turnos → solicitudes → empleados. Devuelve filas planas;
// el cálculo del pago efectivo y la agregación viven en la capa de aplicación.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// PresentAssignments devuelve las asignaciones PRESENTE del período con los
// campos del turno necesarios para calcular el pago efectivo.
func (r *ReportRepo) PresentAssignments(ctx context.Context, start, end time.Time, companyID string) ([]repository.PaymentRow, error) {
	query := `
	SELECT u.id, u.first_name, u.last_name,
	       s.payment_amount, s.has_discount, s.discount_percentage
	FROM shift_assignments a
	JOIN work_shifts    s ON s.id = a.shift_id
	JOIN daily_requests d ON d.id = s.request_id
	JOIN users          u ON u.id = a.employee_id
	WHERE a.status = $1
	  AND d.request_date BETWEEN $2 AND $3`
	args := []any{entity.AssignmentStatusPresente, start, end}
	if companyID != "" {
		query += ` AND d.company_id = $4`
		args = append(args, companyID)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.PresentAssignments: %w", err)
	}
	defer rows.Close()

	var result []repository.PaymentRow
	for rows.Next() {
		var row repository.PaymentRow
		if err := rows.Scan(
			&row.EmployeeID, &row.FirstName, &row.LastName,
			&row.PaymentAmount, &row.HasDiscount, &row.DiscountPercentage,
		); err != nil {
			return nil, fmt.Errorf("report.PresentAssignments scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Attendance devuelve una fila por asignación del período, en cualquier
// estado, con datos identificatorios de turno y empleado.
func (r *ReportRepo) Attendance(ctx context.Context, start, end time.Time, companyID string) ([]repository.AttendanceRow, error) {
	query := `
	SELECT a.id, d.id, d.request_date, c.id, c.name,
	       s.id, s.start_time, s.end_time,
	       u.id, u.first_name, u.last_name, a.status
	FROM shift_assignments a
	JOIN work_shifts    s ON s.id = a.shift_id
	JOIN daily_requests d ON d.id = s.request_id
	JOIN companies      c ON c.id = d.company_id
	JOIN users          u ON u.id = a.employee_id
	WHERE d.request_date BETWEEN $1 AND $2`
	args := []any{start, end}
	if companyID != "" {
		query += ` AND d.company_id = $3`
		args = append(args, companyID)
	}
	query += ` ORDER BY d.request_date, s.start_time, u.first_name, u.last_name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.Attendance: %w", err)
	}
	defer rows.Close()

	var result []repository.AttendanceRow
	for rows.Next() {
		var row repository.AttendanceRow
		if err := rows.Scan(
			&row.AssignmentID, &row.RequestID, &row.RequestDate, &row.CompanyID, &row.CompanyName,
			&row.ShiftID, &row.StartTime, &row.EndTime,
			&row.EmployeeID, &row.FirstName, &row.LastName, &row.Status,
		); err != nil {
			return nil, fmt.Errorf("report.Attendance scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// RequestCountByCompany solicitudes por empresa en el período (dashboard).
func (r *ReportRepo) RequestCountByCompany(ctx context.Context, start, end time.Time, companyID string) ([]repository.CompanyRequestCount, error) {
	query := `
	SELECT c.name, COUNT(d.id)
	FROM daily_requests d
	JOIN companies c ON c.id = d.company_id
	WHERE d.request_date BETWEEN $1 AND $2`
	args := []any{start, end}
	if companyID != "" {
		query += ` AND d.company_id = $3`
		args = append(args, companyID)
	}
	query += ` GROUP BY c.name ORDER BY c.name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.RequestCountByCompany: %w", err)
	}
	defer rows.Close()

	var result []repository.CompanyRequestCount
	for rows.Next() {
		var row repository.CompanyRequestCount
		if err := rows.Scan(&row.CompanyName, &row.RequestCount); err != nil {
			return nil, fmt.Errorf("report.RequestCountByCompany scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// AttendanceStatusByCompany asignaciones por empresa y estado en el período.
func (r *ReportRepo) AttendanceStatusByCompany(ctx context.Context, start, end time.Time, companyID string) ([]repository.CompanyStatusCount, error) {
	query := `
	SELECT c.name, a.status, COUNT(a.id)
	FROM shift_assignments a
	JOIN work_shifts    s ON s.id = a.shift_id
	JOIN daily_requests d ON d.id = s.request_id
	JOIN companies      c ON c.id = d.company_id
	WHERE d.request_date BETWEEN $1 AND $2`
	args := []any{start, end}
	if companyID != "" {
		query += ` AND d.company_id = $3`
		args = append(args, companyID)
	}
	query += ` GROUP BY c.name, a.status ORDER BY c.name, a.status`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.AttendanceStatusByCompany: %w", err)
	}
	defer rows.Close()

	var result []repository.CompanyStatusCount
	for rows.Next() {
		var row repository.CompanyStatusCount
		if err := rows.Scan(&row.CompanyName, &row.Status, &row.Count); err != nil {
			return nil, fmt.Errorf("report.AttendanceStatusByCompany scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
