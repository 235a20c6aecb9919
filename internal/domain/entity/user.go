package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Estados de cuenta de usuario.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// ValidRole reporta si el valor es un rol conocido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User representa un usuario que accede al panel (RRHH / administración).
// StoreID vacío para administradores que acceden a todas las tiendas.
type User struct {
	ID           string
	StoreID      string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | user
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
