package staffing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/domain"
	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

// AssignmentUseCase motor de asignaciones: hace cumplir el cupo del turno y
// la unicidad (shift, employee) al escalar un empleado, y gestiona el estado
// de cada asignación.
type AssignmentUseCase struct {
	txRunner   TxRunner
	userRepo   repository.UserRepository
	assignRepo repository.ShiftAssignmentRepository
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	assignRepo repository.ShiftAssignmentRepository,
) *AssignmentUseCase {
	return &AssignmentUseCase{txRunner: txRunner, userRepo: userRepo, assignRepo: assignRepo}
}

// Create escala un empleado a un turno. Orden de decisión (el orden importa
// para qué error se reporta cuando aplican varios):
//
//  1. turno inexistente          → ErrNotFound
//  2. cupo lleno (count ≥ qty)   → ErrShiftFull
//  3. par (turno, empleado) ya existe → ErrAlreadyAssigned
//  4. inserta con estado ASIGNADO
//
// Todo ocurre dentro de una transacción con la fila del turno bloqueada
// (SELECT FOR UPDATE), así dos callers simultáneos no pueden superar el cupo
// entre el conteo y el insert. El cupo cuenta asignaciones en cualquier
// estado: una PRESENTE o FALTOU sigue ocupando su vacante.
func (uc *AssignmentUseCase) Create(ctx context.Context, in dto.CreateAssignmentRequest, actorID string) (*dto.AssignmentResponse, error) {
	employee, err := uc.userRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	assignment := &entity.ShiftAssignment{
		ID:         uuid.New().String(),
		ShiftID:    in.ShiftID,
		EmployeeID: in.EmployeeID,
		Status:     entity.AssignmentStatusAsignado,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatedBy:  actorID,
		UpdatedBy:  actorID,
	}

	err = uc.txRunner.RunAssignment(ctx, func(
		shiftRepo repository.WorkShiftRepository,
		assignRepo repository.ShiftAssignmentRepository,
	) error {
		shift, err := shiftRepo.GetForUpdate(in.ShiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return domain.ErrNotFound
		}
		count, err := assignRepo.CountByShift(in.ShiftID)
		if err != nil {
			return err
		}
		if count >= shift.Quantity {
			return domain.ErrShiftFull
		}
		existing, err := assignRepo.GetByShiftAndEmployee(in.ShiftID, in.EmployeeID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyAssigned
		}
		return assignRepo.Create(assignment)
	})
	if err != nil {
		return nil, err
	}

	assignment.EmployeeFirstName = employee.FirstName
	assignment.EmployeeLastName = employee.LastName
	resp := assignmentToResponse(assignment)
	return &resp, nil
}

// UpdateStatus cambia el estado de la asignación dentro del conjunto cerrado
// (ASIGNADO, PRESENTE, FALTOU, CANCELADO). No toca el cupo: el cupo siempre
// se deriva del conteo vivo de filas.
func (uc *AssignmentUseCase) UpdateStatus(id, status, actorID string) (*dto.AssignmentResponse, error) {
	if !entity.IsValidAssignmentStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	assignment, err := uc.assignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, domain.ErrNotFound
	}
	assignment.Status = status
	assignment.UpdatedAt = time.Now()
	assignment.UpdatedBy = actorID
	if err := uc.assignRepo.Update(assignment); err != nil {
		return nil, err
	}
	resp := assignmentToResponse(assignment)
	return &resp, nil
}

// Delete borra la asignación; libera una vacante implícitamente.
// Devuelve false (sin error) si no existe.
func (uc *AssignmentUseCase) Delete(id string) (bool, error) {
	return uc.assignRepo.Delete(id)
}
