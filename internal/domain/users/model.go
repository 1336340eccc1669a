package users

import (
	"strings"
	"time"
)

type User struct {
	ID       uint `gorm:"primaryKey"`
	Name     string
	Email    string `gorm:"not null;index:idx_users_email"`
	Password string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmailLooksValid is the only rule applied to an email address.
func EmailLooksValid(email string) bool {
	return strings.Contains(email, "@")
}
