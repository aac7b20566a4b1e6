package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/auth"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/database"
)

type adminUserRepository struct {
	db *database.DB
}

func NewAdminUserRepository(db *database.DB) auth.AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (auth.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, name, passwordhash, isactive, createdat
		FROM adminusers
		WHERE username = $1 AND isactive = TRUE
	`

	var user auth.AdminUser
	err := q.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AdminUser{}, auth.ErrAdminUserNotFound
		}
		return auth.AdminUser{}, fmt.Errorf("failed to get admin user: %w", err)
	}
	return user, nil
}
