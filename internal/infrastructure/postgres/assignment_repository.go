package postgres

import (
	"context"
	"fmt"

	"github.com/dguzman/staffing-api/internal/domain"
	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

var _ repository.ShiftAssignmentRepository = (*ShiftAssignmentRepo)(nil)

// ShiftAssignmentRepo implementación del puerto ShiftAssignmentRepository sobre PostgreSQL.
type ShiftAssignmentRepo struct {
	q Querier
}

// NewShiftAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShiftAssignmentRepository(q Querier) *ShiftAssignmentRepo {
	return &ShiftAssignmentRepo{q: q}
}

// Create persiste una asignación. El constraint único (shift_id, employee_id)
// respalda en el esquema el chequeo de duplicados del caso de uso.
func (r *ShiftAssignmentRepo) Create(a *entity.ShiftAssignment) error {
	query := `
		INSERT INTO shift_assignments (id, shift_id, employee_id, status, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ShiftID, a.EmployeeID, a.Status,
		a.CreatedAt, a.UpdatedAt, a.CreatedBy, a.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyAssigned
		}
		return fmt.Errorf("insert shift_assignment: %w", err)
	}
	return nil
}

const assignmentSelect = `
	SELECT a.id, a.shift_id, a.employee_id, a.status,
	       a.created_at, a.updated_at, a.created_by, a.updated_by,
	       u.first_name, u.last_name
	FROM shift_assignments a
	JOIN users u ON u.id = a.employee_id`

// GetByID obtiene una asignación con el nombre del empleado poblado.
func (r *ShiftAssignmentRepo) GetByID(id string) (*entity.ShiftAssignment, error) {
	return r.scanOne(assignmentSelect+` WHERE a.id = $1`, id)
}

// GetByShiftAndEmployee busca la asignación de un empleado en un turno.
func (r *ShiftAssignmentRepo) GetByShiftAndEmployee(shiftID, employeeID string) (*entity.ShiftAssignment, error) {
	return r.scanOne(assignmentSelect+` WHERE a.shift_id = $1 AND a.employee_id = $2`, shiftID, employeeID)
}

func (r *ShiftAssignmentRepo) scanOne(query string, args ...any) (*entity.ShiftAssignment, error) {
	var a entity.ShiftAssignment
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&a.ID, &a.ShiftID, &a.EmployeeID, &a.Status,
		&a.CreatedAt, &a.UpdatedAt, &a.CreatedBy, &a.UpdatedBy,
		&a.EmployeeFirstName, &a.EmployeeLastName,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift_assignment: %w", err)
	}
	return &a, nil
}

// CountByShift cuenta en vivo las asignaciones del turno, en cualquier estado.
func (r *ShiftAssignmentRepo) CountByShift(shiftID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM shift_assignments WHERE shift_id = $1`, shiftID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count shift_assignments: %w", err)
	}
	return count, nil
}

// ListByShift devuelve las asignaciones de un turno con nombres de empleado.
func (r *ShiftAssignmentRepo) ListByShift(shiftID string) ([]*entity.ShiftAssignment, error) {
	rows, err := r.q.Query(context.Background(),
		assignmentSelect+` WHERE a.shift_id = $1 ORDER BY u.first_name, u.last_name`, shiftID)
	if err != nil {
		return nil, fmt.Errorf("list shift_assignments: %w", err)
	}
	defer rows.Close()

	var list []*entity.ShiftAssignment
	for rows.Next() {
		var a entity.ShiftAssignment
		if err := rows.Scan(
			&a.ID, &a.ShiftID, &a.EmployeeID, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.CreatedBy, &a.UpdatedBy,
			&a.EmployeeFirstName, &a.EmployeeLastName,
		); err != nil {
			return nil, fmt.Errorf("scan shift_assignment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza estado y auditoría de una asignación.
func (r *ShiftAssignmentRepo) Update(a *entity.ShiftAssignment) error {
	query := `
		UPDATE shift_assignments
		SET status = $2, updated_at = $3, updated_by = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, a.ID, a.Status, a.UpdatedAt, a.UpdatedBy)
	if err != nil {
		return fmt.Errorf("update shift_assignment: %w", err)
	}
	return nil
}

// Delete borra la fila. El cupo del turno se libera solo: siempre se deriva
// del conteo vivo.
func (r *ShiftAssignmentRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete shift_assignment: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
