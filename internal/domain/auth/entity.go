package auth

import "time"

// AdminUser is a back-office account with password login.
type AdminUser struct {
	ID           int64
	Username     string
	Name         string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}
