package postgres

import (
	"context"
	"fmt"

	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

var _ repository.WorkShiftRepository = (*WorkShiftRepo)(nil)

// WorkShiftRepo implementación del puerto WorkShiftRepository sobre PostgreSQL.
type WorkShiftRepo struct {
	q Querier
}

// NewWorkShiftRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkShiftRepository(q Querier) *WorkShiftRepo {
	return &WorkShiftRepo{q: q}
}

const shiftColumns = `id, request_id, start_time, end_time, payment_amount, quantity,
	has_discount, discount_percentage, created_at, updated_at, created_by, updated_by`

// Create persiste un turno.
func (r *WorkShiftRepo) Create(shift *entity.WorkShift) error {
	query := `
		INSERT INTO work_shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.RequestID, shift.StartTime, shift.EndTime,
		shift.PaymentAmount, shift.Quantity, shift.HasDiscount, shift.DiscountPercentage,
		shift.CreatedAt, shift.UpdatedAt, shift.CreatedBy, shift.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert work_shift: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID.
func (r *WorkShiftRepo) GetByID(id string) (*entity.WorkShift, error) {
	query := `SELECT ` + shiftColumns + ` FROM work_shifts WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el turno y bloquea la fila (SELECT FOR UPDATE) para que
// el conteo de cupo + insert posterior no compita con otra transacción.
func (r *WorkShiftRepo) GetForUpdate(id string) (*entity.WorkShift, error) {
	query := `SELECT ` + shiftColumns + ` FROM work_shifts WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *WorkShiftRepo) scanOne(query string, arg any) (*entity.WorkShift, error) {
	var s entity.WorkShift
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.RequestID, &s.StartTime, &s.EndTime,
		&s.PaymentAmount, &s.Quantity, &s.HasDiscount, &s.DiscountPercentage,
		&s.CreatedAt, &s.UpdatedAt, &s.CreatedBy, &s.UpdatedBy,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work_shift: %w", err)
	}
	return &s, nil
}

// ListByRequest devuelve los turnos de una solicitud ordenados por hora de inicio.
func (r *WorkShiftRepo) ListByRequest(requestID string) ([]*entity.WorkShift, error) {
	query := `SELECT ` + shiftColumns + ` FROM work_shifts WHERE request_id = $1 ORDER BY start_time`
	rows, err := r.q.Query(context.Background(), query, requestID)
	if err != nil {
		return nil, fmt.Errorf("list work_shifts: %w", err)
	}
	defer rows.Close()

	var list []*entity.WorkShift
	for rows.Next() {
		var s entity.WorkShift
		if err := rows.Scan(
			&s.ID, &s.RequestID, &s.StartTime, &s.EndTime,
			&s.PaymentAmount, &s.Quantity, &s.HasDiscount, &s.DiscountPercentage,
			&s.CreatedAt, &s.UpdatedAt, &s.CreatedBy, &s.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan work_shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
