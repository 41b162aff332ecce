package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dguzman/staffing-api/internal/application/staffing"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

// Ensure TxRunner implements staffing.TxRunner.
var _ staffing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRequest inicia una transacción, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback. Se usa para crear cabecera + turnos de forma atómica.
func (r *TxRunner) RunRequest(ctx context.Context, fn func(
	reqRepo repository.DailyRequestRepository,
	shiftRepo repository.WorkShiftRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDailyRequestRepository(tx), NewWorkShiftRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAssignment inicia una transacción para el chequeo de cupo + insert de la
// asignación. El callback bloquea la fila del turno con GetForUpdate.
func (r *TxRunner) RunAssignment(ctx context.Context, fn func(
	shiftRepo repository.WorkShiftRepository,
	assignRepo repository.ShiftAssignmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewWorkShiftRepository(tx), NewShiftAssignmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
