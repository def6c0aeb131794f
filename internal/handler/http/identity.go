package http

import (
	"context"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// identityFromContext resolves the verified token claims into an explicit
// Identity value. Handlers pass it into every service call; services never
// reach back into the request context for the caller.
func identityFromContext(ctx context.Context) (auth.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	employeeCode, _ := claims["employee_code"].(string)

	return auth.Identity{
		UserID:       userID,
		EmployeeCode: employeeCode,
		Role:         user.Role(role),
	}, nil
}
