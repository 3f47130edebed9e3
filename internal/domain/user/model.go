package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to an account. New registrations default to RolePatient.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "medico"
	RolePatient = "paciente"
)

// User maps to the users table.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Name         string     `db:"name" json:"name"`
	Role         string     `db:"role" json:"role"`
	Active       bool       `db:"active" json:"active"`
	Phone        *string    `db:"phone" json:"phone,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
}
