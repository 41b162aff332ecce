package postgres

import (
	"context"
	"fmt"

	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

var _ repository.DailyRequestRepository = (*DailyRequestRepo)(nil)

// DailyRequestRepo implementación del puerto DailyRequestRepository sobre PostgreSQL.
type DailyRequestRepo struct {
	q Querier
}

// NewDailyRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDailyRequestRepository(q Querier) *DailyRequestRepo {
	return &DailyRequestRepo{q: q}
}

const requestColumns = `id, company_id, request_date, status, created_at, updated_at, created_by, updated_by`

// Create persiste la cabecera de una solicitud.
func (r *DailyRequestRepo) Create(req *entity.DailyRequest) error {
	query := `
		INSERT INTO daily_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.CompanyID, req.RequestDate, req.Status,
		req.CreatedAt, req.UpdatedAt, req.CreatedBy, req.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert daily_request: %w", err)
	}
	return nil
}

// GetByID obtiene solo la cabecera de una solicitud.
func (r *DailyRequestRepo) GetByID(id string) (*entity.DailyRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM daily_requests WHERE id = $1`
	var req entity.DailyRequest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.CompanyID, &req.RequestDate, &req.Status,
		&req.CreatedAt, &req.UpdatedAt, &req.CreatedBy, &req.UpdatedBy,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily_request: %w", err)
	}
	return &req, nil
}

// GetWithShifts obtiene la solicitud con sus turnos y, por cada turno, sus
// asignaciones con el nombre del empleado poblado.
func (r *DailyRequestRepo) GetWithShifts(id string) (*entity.DailyRequest, error) {
	req, err := r.GetByID(id)
	if err != nil || req == nil {
		return req, err
	}

	shiftRepo := NewWorkShiftRepository(r.q)
	shifts, err := shiftRepo.ListByRequest(id)
	if err != nil {
		return nil, err
	}

	assignRepo := NewShiftAssignmentRepository(r.q)
	req.Shifts = make([]entity.WorkShift, 0, len(shifts))
	for _, s := range shifts {
		assignments, err := assignRepo.ListByShift(s.ID)
		if err != nil {
			return nil, err
		}
		s.Assignments = make([]entity.ShiftAssignment, 0, len(assignments))
		for _, a := range assignments {
			s.Assignments = append(s.Assignments, *a)
		}
		req.Shifts = append(req.Shifts, *s)
	}
	return req, nil
}

// List devuelve solicitudes ordenadas por fecha descendente.
// companyID vacío = todas las empresas.
func (r *DailyRequestRepo) List(limit, offset int, companyID string) ([]*entity.DailyRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM daily_requests`
	args := []any{limit, offset}
	if companyID != "" {
		query += ` WHERE company_id = $3`
		args = append(args, companyID)
	}
	query += ` ORDER BY request_date DESC LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily_requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.DailyRequest
	for rows.Next() {
		var req entity.DailyRequest
		if err := rows.Scan(
			&req.ID, &req.CompanyID, &req.RequestDate, &req.Status,
			&req.CreatedAt, &req.UpdatedAt, &req.CreatedBy, &req.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan daily_request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// Update actualiza estado y auditoría de la cabecera.
func (r *DailyRequestRepo) Update(req *entity.DailyRequest) error {
	query := `
		UPDATE daily_requests
		SET status = $2, updated_at = $3, updated_by = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.Status, req.UpdatedAt, req.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update daily_request: %w", err)
	}
	return nil
}

// Delete borra la solicitud. Los turnos y asignaciones caen por
// ON DELETE CASCADE en el esquema; no se re-implementa por llamada.
func (r *DailyRequestRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM daily_requests WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete daily_request: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
