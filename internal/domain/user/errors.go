package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrEmployeeCodeExists = errors.New("employee ID already exists")
)
