package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sevaksoft/payroll-backend-go/internal/domain/auth"
	"github.com/sevaksoft/payroll-backend-go/internal/handler/http/response"
	"github.com/sevaksoft/payroll-backend-go/internal/pkg/jwt"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != jwt.RoleAdmin {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// TokenSubject returns the "sub" claim of the verified token.
func TokenSubject(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	return sub, ok
}

// SelfOrAdmin allows admins through unconditionally and employees only
// when the route's employee code matches their own token subject.
func SelfOrAdmin(paramEmployeeCode func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			role, _ := claims["role"].(string)
			if role == jwt.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}

			sub, _ := claims["sub"].(string)
			if role != jwt.RoleEmployee || sub == "" || sub != paramEmployeeCode(r) {
				response.Forbidden(w, "Access restricted to your own records")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
