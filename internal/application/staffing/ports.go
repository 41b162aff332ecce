package staffing

import (
	"context"
	"time"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción. La implementación
// (infrastructure/postgres) ata los repositorios recibidos a la misma tx,
// de modo que todo lo escrito dentro del callback persiste o se revierte junto.
type TxRunner interface {
	// RunRequest transacción para crear una solicitud con sus turnos (todo o nada).
	RunRequest(ctx context.Context, fn func(
		reqRepo repository.DailyRequestRepository,
		shiftRepo repository.WorkShiftRepository,
	) error) error

	// RunAssignment transacción para el chequeo de cupo + inserción de una
	// asignación. El turno se bloquea con SELECT FOR UPDATE dentro del callback
	// para cerrar la carrera entre el conteo y el insert.
	RunAssignment(ctx context.Context, fn func(
		shiftRepo repository.WorkShiftRepository,
		assignRepo repository.ShiftAssignmentRepository,
	) error) error
}

// PaymentsPDFGenerator genera la representación PDF del reporte de pagos.
type PaymentsPDFGenerator interface {
	Generate(start, end time.Time, items []dto.EmployeePayment) ([]byte, error)
}
