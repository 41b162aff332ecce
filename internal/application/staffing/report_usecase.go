package staffing

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/domain"
	"github.com/dguzman/staffing-api/internal/domain/repository"
	domstaffing "github.com/dguzman/staffing-api/internal/domain/staffing"
)

// ReportUseCase reportes de pagos y presencia sobre el período consultado.
// El cálculo monetario pasa siempre por staffing.EffectivePayment; el SQL solo
// entrega filas planas.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	pdfGen     PaymentsPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdfGen puede ser nil si la
// exportación PDF no está habilitada.
func NewReportUseCase(reportRepo repository.ReportRepository, pdfGen PaymentsPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, pdfGen: pdfGen}
}

func parsePeriod(f dto.ReportFilter) (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, f.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	end, err = time.Parse(dateLayout, f.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}

// Payments suma el pago efectivo por empleado sobre las asignaciones PRESENTE
// del período. Empleados sin asignaciones que apliquen se omiten (no filas en
// cero). Orden: nombre y luego apellido, ascendente.
func (uc *ReportUseCase) Payments(ctx context.Context, f dto.ReportFilter) ([]dto.EmployeePayment, error) {
	start, end, err := parsePeriod(f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.PresentAssignments(ctx, start, end, f.CompanyID)
	if err != nil {
		return nil, err
	}

	type agg struct {
		firstName string
		lastName  string
		total     decimal.Decimal
	}
	totals := make(map[string]*agg)
	for _, row := range rows {
		amount := domstaffing.EffectivePayment(row.PaymentAmount, row.HasDiscount, row.DiscountPercentage)
		if a, ok := totals[row.EmployeeID]; ok {
			a.total = a.total.Add(amount)
		} else {
			totals[row.EmployeeID] = &agg{firstName: row.FirstName, lastName: row.LastName, total: amount}
		}
	}

	result := make([]dto.EmployeePayment, 0, len(totals))
	for id, a := range totals {
		result = append(result, dto.EmployeePayment{
			EmployeeID:   id,
			EmployeeName: a.firstName + " " + a.lastName,
			TotalAmount:  a.total.InexactFloat64(),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := totals[result[i].EmployeeID], totals[result[j].EmployeeID]
		if a.firstName != b.firstName {
			return a.firstName < b.firstName
		}
		if a.lastName != b.lastName {
			return a.lastName < b.lastName
		}
		return result[i].EmployeeID < result[j].EmployeeID
	})
	return result, nil
}

// PaymentsPDF genera el reporte de pagos como PDF descargable.
func (uc *ReportUseCase) PaymentsPDF(ctx context.Context, f dto.ReportFilter) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.Payments(ctx, f)
	if err != nil {
		return nil, err
	}
	start, _ := time.Parse(dateLayout, f.StartDate)
	end, _ := time.Parse(dateLayout, f.EndDate)
	return uc.pdfGen.Generate(start, end, items)
}

// Attendance devuelve una fila por asignación del período, sin agrupar y sin
// filtrar por estado: sirve para auditar presencias y ausencias.
func (uc *ReportUseCase) Attendance(ctx context.Context, f dto.ReportFilter) ([]dto.AttendanceRecord, error) {
	start, end, err := parsePeriod(f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.Attendance(ctx, start, end, f.CompanyID)
	if err != nil {
		return nil, err
	}
	records := make([]dto.AttendanceRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, dto.AttendanceRecord{
			AssignmentID: r.AssignmentID,
			RequestID:    r.RequestID,
			RequestDate:  r.RequestDate.Format(dateLayout),
			CompanyName:  r.CompanyName,
			ShiftID:      r.ShiftID,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.FirstName + " " + r.LastName,
			Status:       r.Status,
		})
	}
	return records, nil
}

// DashboardStats solicitudes por empresa en el período.
func (uc *ReportUseCase) DashboardStats(ctx context.Context, f dto.ReportFilter) ([]dto.CompanyRequestStat, error) {
	start, end, err := parsePeriod(f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.RequestCountByCompany(ctx, start, end, f.CompanyID)
	if err != nil {
		return nil, err
	}
	stats := make([]dto.CompanyRequestStat, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, dto.CompanyRequestStat{CompanyName: r.CompanyName, RequestCount: r.RequestCount})
	}
	return stats, nil
}

// AttendanceStats asignaciones por empresa y estado en el período.
func (uc *ReportUseCase) AttendanceStats(ctx context.Context, f dto.ReportFilter) ([]dto.AttendanceStat, error) {
	start, end, err := parsePeriod(f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.AttendanceStatusByCompany(ctx, start, end, f.CompanyID)
	if err != nil {
		return nil, err
	}
	stats := make([]dto.AttendanceStat, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, dto.AttendanceStat{CompanyName: r.CompanyName, Status: r.Status, Count: r.Count})
	}
	return stats, nil
}
