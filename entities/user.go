package entities

import (
	"github.com/google/uuid"
)

// User's entity JSON is only ever written by the file persistence
// layer; API responses go through domain.UserResponse, which carries no
// password. The hash therefore must round-trip here.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"password"`
	Role     string    `json:"role"`

	Timestamp
}
