package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/dguzman/staffing-api/internal/application/dto"
	"github.com/dguzman/staffing-api/internal/domain"
	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas cliente.
// Las empresas nunca se borran físicamente: se desactivan con IsActive.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa. Devuelve domain.ErrDuplicate si la
// identificación fiscal ya existe.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest, actorID string) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByTaxID(in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		Name:          in.Name,
		TaxID:         in.TaxID,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		IsActive:      active,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     actorID,
		UpdatedBy:     actorID,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// GetByID obtiene una empresa por ID. Devuelve nil sin error si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return companyToResponse(company), nil
}

// Update actualiza parcialmente una empresa. Devuelve ErrNotFound si no existe.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest, actorID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.ContactPerson != nil {
		company.ContactPerson = *in.ContactPerson
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	company.UpdatedAt = time.Now()
	company.UpdatedBy = actorID
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// List lista empresas ordenadas por nombre, con paginación.
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *companyToResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		TaxID:         c.TaxID,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
