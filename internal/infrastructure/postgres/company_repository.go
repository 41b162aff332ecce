package postgres

import (
	"context"
	"fmt"

	"github.com/dguzman/staffing-api/internal/domain"
	"github.com/dguzman/staffing-api/internal/domain/entity"
	"github.com/dguzman/staffing-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, tax_id, contact_person, phone, email, is_active, created_at, updated_at, created_by, updated_by`

// Create persiste una nueva empresa. Devuelve domain.ErrDuplicate si el tax_id ya existe.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.ContactPerson,
		company.Phone, company.Email, company.IsActive,
		company.CreatedAt, company.UpdatedAt, company.CreatedBy, company.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByTaxID obtiene una empresa por identificación fiscal.
func (r *CompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE tax_id = $1`
	return r.scanOne(query, taxID)
}

func (r *CompanyRepo) scanOne(query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.ContactPerson, &c.Phone, &c.Email,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, contact_person = $3, phone = $4, email = $5,
		    is_active = $6, updated_at = $7, updated_by = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.ContactPerson, company.Phone,
		company.Email, company.IsActive, company.UpdatedAt, company.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List devuelve empresas ordenadas por nombre, con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.TaxID, &c.ContactPerson, &c.Phone, &c.Email,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
