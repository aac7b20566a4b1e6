package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/auth"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/jwt"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/otp"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo    auth.AdminUserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	otpStore     *otp.Store
}

func NewAuthService(
	adminRepo auth.AdminUserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	otpStore *otp.Store,
) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		otpStore:     otpStore,
	}
}

func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	admin, err := a.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrAdminUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get admin user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(admin.Username, jwt.RoleAdmin)
}

func (a *AuthServiceImpl) RequestOTP(ctx context.Context, req auth.RequestOTPRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := a.employeeRepo.GetByPhone(ctx, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Do not leak which numbers exist.
			slog.Info("OTP requested for unknown phone number")
			return nil
		}
		return fmt.Errorf("failed to get employee by phone: %w", err)
	}

	code, err := a.otpStore.Generate(req.PhoneNumber)
	if err != nil {
		return err
	}

	// SMS delivery is handled out of band; hand the code to the gateway
	// via the log for now.
	// TODO: replace with the SMS gateway call once its account is provisioned.
	slog.Info("OTP issued", "employee_code", emp.EmployeeCode, "code", code)
	return nil
}

func (a *AuthServiceImpl) VerifyOTP(ctx context.Context, req auth.VerifyOTPRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := a.employeeRepo.GetByPhone(ctx, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidOTP
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by phone: %w", err)
	}

	if err := a.otpStore.Verify(req.PhoneNumber, req.Code); err != nil {
		slog.Warn("OTP verification failed",
			"employee_code", emp.EmployeeCode, "error", err)
		return auth.TokenResponse{}, auth.ErrInvalidOTP
	}

	return a.issueTokens(emp.EmployeeCode, jwt.RoleEmployee)
}

func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	subject, role, err := a.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(subject, role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (a *AuthServiceImpl) issueTokens(subject, role string) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(subject, role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(subject, role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
		Role:                  role,
		Subject:               subject,
	}, nil
}
