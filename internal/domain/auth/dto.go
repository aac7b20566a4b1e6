package auth

import (
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/validator"
)

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r AdminLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "Username is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (r RequestOTPRequest) Validate() error {
	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		return validator.ValidationErrors{{Field: "phone_number", Message: "Invalid phone number"}}
	}
	return nil
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code"`
}

func (r VerifyOTPRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "Invalid phone number"})
	}
	if len(r.Code) != 6 || !validator.IsNumeric(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "Code must be 6 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
	Role                  string `json:"role"`
	Subject               string `json:"subject"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
