package staffing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/domain"
	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
	domstaffing "github.com/dguzman/staffing-api/internal/domain/staffing"
)

const dateLayout = "2006-01-02"

// RequestUseCase ciclo de vida de solicitudes diarias: creación atómica de
// cabecera + turnos, consulta, cambio de estado con tabla de transiciones y
// borrado en cascada.
type RequestUseCase struct {
	txRunner    TxRunner
	requestRepo repository.DailyRequestRepository
	companyRepo repository.CompanyRepository
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(
	txRunner TxRunner,
	requestRepo repository.DailyRequestRepository,
	companyRepo repository.CompanyRepository,
) *RequestUseCase {
	return &RequestUseCase{txRunner: txRunner, requestRepo: requestRepo, companyRepo: companyRepo}
}

// Create registra una solicitud con sus turnos en una sola transacción:
// o persisten todas las filas o ninguna. La cabecera nace en PENDIENTE.
// Para cada turno sin descuento, el porcentaje se fuerza a 0 aunque el caller
// haya enviado otro valor.
func (uc *RequestUseCase) Create(ctx context.Context, in dto.CreateDailyRequestRequest, actorID string) (*dto.DailyRequestResponse, error) {
	reqDate, err := time.Parse(dateLayout, in.RequestDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Shifts) == 0 {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	request := &entity.DailyRequest{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		RequestDate: reqDate,
		Status:      entity.RequestStatusPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}

	shifts := make([]entity.WorkShift, 0, len(in.Shifts))
	for _, s := range in.Shifts {
		amount := decimal.NewFromFloat(s.PaymentAmount)
		if !amount.GreaterThan(decimal.Zero) || s.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		pct := domstaffing.NormalizeDiscount(s.HasDiscount, decimal.NewFromFloat(s.DiscountPercentage))
		shifts = append(shifts, entity.WorkShift{
			ID:                 uuid.New().String(),
			RequestID:          request.ID,
			StartTime:          s.StartTime,
			EndTime:            s.EndTime,
			PaymentAmount:      amount,
			Quantity:           s.Quantity,
			HasDiscount:        s.HasDiscount,
			DiscountPercentage: pct,
			CreatedAt:          now,
			UpdatedAt:          now,
			CreatedBy:          actorID,
			UpdatedBy:          actorID,
		})
	}

	err = uc.txRunner.RunRequest(ctx, func(
		reqRepo repository.DailyRequestRepository,
		shiftRepo repository.WorkShiftRepository,
	) error {
		if err := reqRepo.Create(request); err != nil {
			return err
		}
		for i := range shifts {
			if err := shiftRepo.Create(&shifts[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	request.Shifts = shifts
	return requestToResponse(request), nil
}

// GetByID obtiene la solicitud con turnos y asignaciones anidadas.
func (uc *RequestUseCase) GetByID(id string) (*dto.DailyRequestResponse, error) {
	request, err := uc.requestRepo.GetWithShifts(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	return requestToResponse(request), nil
}

// List lista solicitudes ordenadas por fecha descendente, con filtro opcional de empresa.
func (uc *RequestUseCase) List(limit, offset int, companyID string) (*dto.DailyRequestListResponse, error) {
	list, err := uc.requestRepo.List(limit, offset, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DailyRequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *requestToResponse(r))
	}
	return &dto.DailyRequestListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado de la solicitud respetando la tabla de
// transiciones: PENDIENTE→{CONFIRMADA,CANCELADA}, CONFIRMADA→{FINALIZADA,CANCELADA}.
// Estados no reconocidos o transiciones ilegales devuelven ErrInvalidStatus.
func (uc *RequestUseCase) UpdateStatus(id, status, actorID string) (*dto.DailyRequestResponse, error) {
	if !entity.IsValidRequestStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransitionRequest(request.Status, status) {
		return nil, domain.ErrInvalidStatus
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	request.UpdatedBy = actorID
	if err := uc.requestRepo.Update(request); err != nil {
		return nil, err
	}
	return requestToResponse(request), nil
}

// Delete borra la solicitud; turnos y asignaciones caen en cascada.
// Devuelve false (sin error) si la solicitud no existe.
func (uc *RequestUseCase) Delete(id string) (bool, error) {
	return uc.requestRepo.Delete(id)
}

func requestToResponse(r *entity.DailyRequest) *dto.DailyRequestResponse {
	if r == nil {
		return nil
	}
	shifts := make([]dto.WorkShiftResponse, 0, len(r.Shifts))
	for _, s := range r.Shifts {
		shifts = append(shifts, shiftToResponse(s))
	}
	return &dto.DailyRequestResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		RequestDate: r.RequestDate.Format(dateLayout),
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Shifts:      shifts,
	}
}

func shiftToResponse(s entity.WorkShift) dto.WorkShiftResponse {
	assignments := make([]dto.AssignmentResponse, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		assignments = append(assignments, assignmentToResponse(&a))
	}
	return dto.WorkShiftResponse{
		ID:                 s.ID,
		RequestID:          s.RequestID,
		StartTime:          s.StartTime,
		EndTime:            s.EndTime,
		PaymentAmount:      s.PaymentAmount.InexactFloat64(),
		Quantity:           s.Quantity,
		HasDiscount:        s.HasDiscount,
		DiscountPercentage: s.DiscountPercentage.InexactFloat64(),
		Assignments:        assignments,
	}
}

func assignmentToResponse(a *entity.ShiftAssignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:                a.ID,
		ShiftID:           a.ShiftID,
		EmployeeID:        a.EmployeeID,
		Status:            a.Status,
		EmployeeFirstName: a.EmployeeFirstName,
		EmployeeLastName:  a.EmployeeLastName,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}
