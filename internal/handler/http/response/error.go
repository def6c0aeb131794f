package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. State conflicts and
// duplicate registrations are business-rule violations (400); anything
// unrecognized is logged in full and surfaced as a generic 500.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, user.ErrEmployeeCodeExists):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance state machine errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
