package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	TaxID         string `json:"tax_id" validate:"required,min=1,max=20"`
	ContactPerson string `json:"contact_person" validate:"max=200"`
	Phone         string `json:"phone" validate:"max=30"`
	Email         string `json:"email" validate:"omitempty,email"`
	IsActive      *bool  `json:"is_active"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=200"`
	Phone         *string `json:"phone" validate:"omitempty,max=30"`
	Email         *string `json:"email" validate:"omitempty,email"`
	IsActive      *bool   `json:"is_active"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TaxID         string    `json:"tax_id"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
