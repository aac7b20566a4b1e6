package auth

import "context"

type AuthService interface {
	// AdminLogin authenticates a back-office account by password.
	AdminLogin(ctx context.Context, req AdminLoginRequest) (TokenResponse, error)

	// RequestOTP issues a one-time code for employee portal login.
	// Delivery is out of band; the code is never returned to the caller.
	RequestOTP(ctx context.Context, req RequestOTPRequest) error

	// VerifyOTP exchanges a valid code for portal tokens.
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (TokenResponse, error)

	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error
}
