package middleware

import (
	"context"
	"errors"
	"net/http"

	"doctors-portal-server/internal/usecase"
	"doctors-portal-server/pkg/response"
)

// AdminChecker is the authorization policy for admin routes: given an
// authenticated identity, decide whether it holds the admin capability.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type RoleMiddleware struct {
	checker AdminChecker
}

func NewRoleMiddleware(checker AdminChecker) *RoleMiddleware {
	return &RoleMiddleware{checker: checker}
}

// RequireAdmin allows the request through only when the authenticated
// email's user record carries the admin role. Must run after Authenticate.
func (m *RoleMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := GetUserEmailFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "unauthorized access")
			return
		}

		isAdmin, err := m.checker.IsAdmin(r.Context(), email)
		if err != nil && !errors.Is(err, usecase.ErrUserNotFound) {
			response.InternalServerError(w, "failed to verify role")
			return
		}
		if !isAdmin {
			response.Forbidden(w, "forbidden access")
			return
		}

		next.ServeHTTP(w, r)
	})
}
