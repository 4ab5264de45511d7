package models

import (
	"time"
)

// User defines the account model based on the 'users' table.
// Email doubles as the login handle.
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Email       string    `json:"email" db:"email" example:"jane.doe@college.edu"`
	Password    string    `json:"-" db:"password"` // Hashed password (excluded from JSON)
	FirstName   string    `json:"firstName" db:"first_name" example:"Jane"`
	LastName    string    `json:"lastName" db:"last_name" example:"Doe"`
	IsActive    bool      `json:"isActive" db:"is_active" example:"true"`
	IsSuperuser bool      `json:"isSuperuser" db:"is_superuser" example:"false"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
