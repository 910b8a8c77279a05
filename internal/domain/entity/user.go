package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero" // personal de almacén
	RoleVendedor  = "vendedor"  // personal de tienda
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | bodeguero | vendedor
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
