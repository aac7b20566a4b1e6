package auth

import (
	"context"
	"testing"
	"time"

	"github.com/sevaksoft/payroll-backend-go/internal/domain/auth"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/employee"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/jwt"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/otp"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/paycycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testPhone      = "9876543210"
)

type fakeAdminRepo struct {
	users map[string]auth.AdminUser
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (auth.AdminUser, error) {
	u, ok := f.users[username]
	if !ok {
		return auth.AdminUser{}, auth.ErrAdminUserNotFound
	}
	return u, nil
}

type fakeEmployeeRepo struct {
	byPhone map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByPhone(ctx context.Context, phone string) (employee.Employee, error) {
	e, ok := f.byPhone[phone]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) ListActiveInCycle(ctx context.Context, from, to paycycle.LocalDate) ([]employee.Employee, error) {
	return nil, nil
}

func newTestService(t *testing.T) (auth.AuthService, *otp.Store) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	adminRepo := &fakeAdminRepo{users: map[string]auth.AdminUser{
		"admin": {Username: "admin", PasswordHash: string(hash), IsActive: true},
	}}
	phone := testPhone
	employeeRepo := &fakeEmployeeRepo{byPhone: map[string]employee.Employee{
		testPhone: {EmployeeCode: "EMP001", Name: "Test Employee", PhoneNumber: &phone},
	}}
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	otpStore := otp.NewStore(time.Minute, 3)

	return NewAuthService(adminRepo, employeeRepo, jwtSvc, otpStore), otpStore
}

func TestAdminLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tokens, err := svc.AdminLogin(ctx, auth.AdminLoginRequest{Username: "admin", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, jwt.RoleAdmin, tokens.Role)
	assert.Equal(t, "admin", tokens.Subject)
}

func TestAdminLoginBadPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AdminLogin(context.Background(), auth.AdminLoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAdminLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AdminLogin(context.Background(), auth.AdminLoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRequestOTPUnknownPhoneDoesNotLeak(t *testing.T) {
	svc, _ := newTestService(t)

	// Unknown numbers still succeed so callers cannot probe registration.
	err := svc.RequestOTP(context.Background(), auth.RequestOTPRequest{PhoneNumber: "9000000000"})
	assert.NoError(t, err)
}

func TestVerifyOTP(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	code, err := store.Generate(testPhone)
	require.NoError(t, err)

	tokens, err := svc.VerifyOTP(ctx, auth.VerifyOTPRequest{PhoneNumber: testPhone, Code: code})
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleEmployee, tokens.Role)
	assert.Equal(t, "EMP001", tokens.Subject)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, store := newTestService(t)

	code, err := store.Generate(testPhone)
	require.NoError(t, err)
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	_, err = svc.VerifyOTP(context.Background(), auth.VerifyOTPRequest{PhoneNumber: testPhone, Code: wrong})
	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestRefreshAndLogout(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	code, err := store.Generate(testPhone)
	require.NoError(t, err)
	tokens, err := svc.VerifyOTP(ctx, auth.VerifyOTPRequest{PhoneNumber: testPhone, Code: code})
	require.NoError(t, err)

	access, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, access.AccessToken)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t)
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)

	accessToken, _, err := jwtSvc.GenerateAccessToken("EMP001", jwt.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: accessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyOTPValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.VerifyOTP(context.Background(), auth.VerifyOTPRequest{PhoneNumber: testPhone, Code: "12ab56"})
	assert.Error(t, err)
}
