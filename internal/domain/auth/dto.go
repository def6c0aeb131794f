package auth

import (
	"strings"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/validator"
)

// Identity is the caller resolved from the access token. Core services take
// it as an explicit parameter; nothing reads the "current user" ambiently.
type Identity struct {
	UserID       string
	EmployeeCode string
	Role         user.Role
}

func (i Identity) IsManager() bool {
	return i.Role == user.RoleManager
}

type RegisterRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	EmployeeCode string  `json:"employee_code"`
	Department   *string `json:"department"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	} else if !user.ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee or manager"})
	}
	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee ID is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "invalid employee ID format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AuthResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         user.Role `json:"role"`
	EmployeeCode string    `json:"employee_code"`
	Department   *string   `json:"department,omitempty"`
	AccessToken  string    `json:"access_token"`
	ExpiresAt    int64     `json:"expires_at"`
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
