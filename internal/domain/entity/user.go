package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
)

// User usuario de la aplicación (autenticación por email + password bcrypt).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
