package leaverequesterrors

import (
	"net/http"

	"go-leavedesk/internal/shared/apperror"
)

var (
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of pending, approved, rejected",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"leave request id must be a valid uuid",
		http.StatusBadRequest,
	)
)

// NewValidationError membungkus peta field->pesan hasil ValidateSubmission
// agar handler bisa menampilkannya utuh di response envelope.
func NewValidationError(fields map[string][]string) *apperror.AppError {
	return apperror.NewWithDetails(
		apperror.CodeValidationError,
		"Input tidak valid",
		http.StatusUnprocessableEntity,
		fields,
	)
}
