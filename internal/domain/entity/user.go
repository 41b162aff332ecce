package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User representa un usuario del sistema: identidad de autenticación
// más perfil de empleado (los empleados se escalan a turnos).
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // único
	CPF          string // documento nacional, único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, employee
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve nombre y apellido para listados y reportes.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
