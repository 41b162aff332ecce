package staffing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/application/staffing"
	"github.com/dguzman/staffing-api/internal/domain"
	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

// fakeReportRepo devuelve filas preparadas; captura los filtros recibidos.
type fakeReportRepo struct {
	paymentRows    []repository.PaymentRow
	attendanceRows []repository.AttendanceRow
	requestCounts  []repository.CompanyRequestCount
	statusCounts   []repository.CompanyStatusCount

	gotStart, gotEnd time.Time
	gotCompanyID     string
}

func (f *fakeReportRepo) PresentAssignments(_ context.Context, start, end time.Time, companyID string) ([]repository.PaymentRow, error) {
	f.gotStart, f.gotEnd, f.gotCompanyID = start, end, companyID
	return f.paymentRows, nil
}
func (f *fakeReportRepo) Attendance(_ context.Context, start, end time.Time, companyID string) ([]repository.AttendanceRow, error) {
	f.gotStart, f.gotEnd, f.gotCompanyID = start, end, companyID
	return f.attendanceRows, nil
}
func (f *fakeReportRepo) RequestCountByCompany(_ context.Context, start, end time.Time, companyID string) ([]repository.CompanyRequestCount, error) {
	return f.requestCounts, nil
}
func (f *fakeReportRepo) AttendanceStatusByCompany(_ context.Context, start, end time.Time, companyID string) ([]repository.CompanyStatusCount, error) {
	return f.statusCounts, nil
}

// fakePDFGenerator registra la llamada y devuelve bytes fijos.
type fakePDFGenerator struct {
	gotItems []dto.EmployeePayment
}

func (f *fakePDFGenerator) Generate(start, end time.Time, items []dto.EmployeePayment) ([]byte, error) {
	f.gotItems = items
	return []byte("%PDF-fake"), nil
}

func validFilter() dto.ReportFilter {
	return dto.ReportFilter{StartDate: "2026-03-01", EndDate: "2026-03-31"}
}

func TestPayments_AgregaPorEmpleadoYAplicaDescuento(t *testing.T) {
	repo := &fakeReportRepo{
		paymentRows: []repository.PaymentRow{
			// Dos turnos de Ana: 200 sin descuento + 200 con 25% = 350.
			{EmployeeID: "emp-1", FirstName: "Ana", LastName: "Gómez", PaymentAmount: decimal.NewFromInt(200)},
			{EmployeeID: "emp-1", FirstName: "Ana", LastName: "Gómez", PaymentAmount: decimal.NewFromInt(200), HasDiscount: true, DiscountPercentage: decimal.NewFromInt(25)},
			{EmployeeID: "emp-2", FirstName: "Luis", LastName: "Pérez", PaymentAmount: decimal.NewFromInt(180)},
		},
	}
	uc := staffing.NewReportUseCase(repo, nil)

	out, err := uc.Payments(context.Background(), validFilter())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "emp-1", out[0].EmployeeID)
	assert.Equal(t, "Ana Gómez", out[0].EmployeeName)
	assert.InDelta(t, 350.0, out[0].TotalAmount, 0.001)

	assert.Equal(t, "emp-2", out[1].EmployeeID)
	assert.InDelta(t, 180.0, out[1].TotalAmount, 0.001)
}

func TestPayments_OrdenaPorNombreYApellido(t *testing.T) {
	repo := &fakeReportRepo{
		paymentRows: []repository.PaymentRow{
			{EmployeeID: "emp-3", FirstName: "Carla", LastName: "Zapata", PaymentAmount: decimal.NewFromInt(100)},
			{EmployeeID: "emp-1", FirstName: "Ana", LastName: "Pérez", PaymentAmount: decimal.NewFromInt(100)},
			{EmployeeID: "emp-2", FirstName: "Ana", LastName: "Gómez", PaymentAmount: decimal.NewFromInt(100)},
		},
	}
	uc := staffing.NewReportUseCase(repo, nil)

	out, err := uc.Payments(context.Background(), validFilter())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Ana Gómez", out[0].EmployeeName)
	assert.Equal(t, "Ana Pérez", out[1].EmployeeName)
	assert.Equal(t, "Carla Zapata", out[2].EmployeeName)
}

func TestPayments_SinFilasNoInventaCeros(t *testing.T) {
	uc := staffing.NewReportUseCase(&fakeReportRepo{}, nil)

	out, err := uc.Payments(context.Background(), validFilter())
	require.NoError(t, err)
	assert.Empty(t, out, "sin asignaciones PRESENTE no hay filas, ni siquiera en cero")
}

func TestPayments_PeriodoInvalido(t *testing.T) {
	uc := staffing.NewReportUseCase(&fakeReportRepo{}, nil)

	_, err := uc.Payments(context.Background(), dto.ReportFilter{StartDate: "2026-03-31", EndDate: "2026-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "end anterior a start")

	_, err = uc.Payments(context.Background(), dto.ReportFilter{StartDate: "01/03/2026", EndDate: "2026-03-31"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPayments_PropagaFiltros(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := staffing.NewReportUseCase(repo, nil)

	f := validFilter()
	f.CompanyID = "company-7"
	_, err := uc.Payments(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, "company-7", repo.gotCompanyID)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), repo.gotStart)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), repo.gotEnd)
}

func TestPaymentsPDF_GeneraConLosItemsDelReporte(t *testing.T) {
	repo := &fakeReportRepo{
		paymentRows: []repository.PaymentRow{
			{EmployeeID: "emp-1", FirstName: "Ana", LastName: "Gómez", PaymentAmount: decimal.NewFromInt(200)},
		},
	}
	gen := &fakePDFGenerator{}
	uc := staffing.NewReportUseCase(repo, gen)

	pdfBytes, err := uc.PaymentsPDF(context.Background(), validFilter())
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	require.Len(t, gen.gotItems, 1)
	assert.Equal(t, "Ana Gómez", gen.gotItems[0].EmployeeName)
}

func TestPaymentsPDF_SinGeneradorConfigurado(t *testing.T) {
	uc := staffing.NewReportUseCase(&fakeReportRepo{}, nil)

	_, err := uc.PaymentsPDF(context.Background(), validFilter())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendance_MapeaTodasLasFilas(t *testing.T) {
	repo := &fakeReportRepo{
		attendanceRows: []repository.AttendanceRow{
			{
				AssignmentID: "a-1", RequestID: "r-1",
				RequestDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				CompanyName: "Eventos del Sur", ShiftID: "s-1",
				EmployeeID: "emp-1", FirstName: "Ana", LastName: "Gómez",
				Status: entity.AssignmentStatusPresente,
			},
			{
				AssignmentID: "a-2", RequestID: "r-1",
				RequestDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				CompanyName: "Eventos del Sur", ShiftID: "s-1",
				EmployeeID: "emp-2", FirstName: "Luis", LastName: "Pérez",
				Status: entity.AssignmentStatusFaltou,
			},
		},
	}
	uc := staffing.NewReportUseCase(repo, nil)

	out, err := uc.Attendance(context.Background(), validFilter())
	require.NoError(t, err)
	require.Len(t, out, 2, "presencia incluye todos los estados, no solo PRESENTE")
	assert.Equal(t, "2026-03-10", out[0].RequestDate)
	assert.Equal(t, "Ana Gómez", out[0].EmployeeName)
	assert.Equal(t, entity.AssignmentStatusFaltou, out[1].Status)
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeReportRepo{
		requestCounts: []repository.CompanyRequestCount{
			{CompanyName: "Eventos del Sur", RequestCount: 4},
			{CompanyName: "Logística Norte", RequestCount: 2},
		},
	}
	uc := staffing.NewReportUseCase(repo, nil)

	out, err := uc.DashboardStats(context.Background(), validFilter())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Eventos del Sur", out[0].CompanyName)
	assert.Equal(t, 4, out[0].RequestCount)
}

func TestAttendanceStats(t *testing.T) {
	repo := &fakeReportRepo{
		statusCounts: []repository.CompanyStatusCount{
			{CompanyName: "Eventos del Sur", Status: entity.AssignmentStatusPresente, Count: 3},
			{CompanyName: "Eventos del Sur", Status: entity.AssignmentStatusFaltou, Count: 1},
		},
	}
	uc := staffing.NewReportUseCase(repo, nil)

	out, err := uc.AttendanceStats(context.Background(), validFilter())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, entity.AssignmentStatusPresente, out[0].Status)
	assert.Equal(t, 1, out[1].Count)
}
