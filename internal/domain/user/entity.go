package user

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // Team view, filters, export
	RoleEmployee Role = "employee" // Check-in/out, personal history
)

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	return s == string(RoleManager) || s == string(RoleEmployee)
}

type User struct {
	ID           string
	EmployeeCode string
	Name         string
	Email        string
	PasswordHash string
	Department   *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager checks if user holds the manager role.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
