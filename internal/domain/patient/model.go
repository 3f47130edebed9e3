package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. UserID is the owning account; it is
// cleared, not cascaded, when the account is removed.
type Patient struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	FirstName string     `db:"first_name" json:"first_name"`
	LastName  string     `db:"last_name" json:"last_name"`
	BirthDate time.Time  `db:"birth_date" json:"birth_date"`
	DNI       *string    `db:"dni" json:"dni,omitempty"`
	Gender    *string    `db:"gender" json:"gender,omitempty"`
	Phone     *string    `db:"phone" json:"phone,omitempty"`
	Email     *string    `db:"email" json:"email,omitempty"`
	Address   *string    `db:"address" json:"address,omitempty"`
	HeightM   *float64   `db:"height_m" json:"height_m,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`

	// Age is derived from BirthDate at read time, never stored.
	Age *int `db:"-" json:"age,omitempty"`
}
