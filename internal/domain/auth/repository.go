package auth

import "context"

type AdminUserRepository interface {
	// GetByUsername returns ErrAdminUserNotFound for unknown or inactive
	// accounts.
	GetByUsername(ctx context.Context, username string) (AdminUser, error)
}
