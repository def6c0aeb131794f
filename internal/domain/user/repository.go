package user

import "context"

// UserRepository defines data access for the identity collaborator. The
// attendance core reads employees through it and never mutates them outside
// of registration.
type UserRepository interface {
	// Create inserts a new user; duplicate email or employee code is
	// reported via ErrEmailExists / ErrEmployeeCodeExists.
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByEmployeeCode matches the human-readable code case-insensitively
	// ("emp002" finds "EMP002").
	GetByEmployeeCode(ctx context.Context, code string) (User, error)

	// CountEmployees returns the employee-role headcount, the denominator
	// for the team snapshot's absent-by-subtraction figure.
	CountEmployees(ctx context.Context) (int, error)
}
