package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAdminUserNotFound  = errors.New("admin user not found")
)
