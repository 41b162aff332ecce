package entity

import "time"

// Company representa una empresa cliente que solicita personal.
type Company struct {
	ID            string
	Name          string
	TaxID         string // identificación fiscal, única
	ContactPerson string
	Phone         string
	Email         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
	UpdatedBy     string
}
