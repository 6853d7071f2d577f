package leaverequest

import (
	"errors"
	"net/http"

	leaverequesterrors "go-leavedesk/internal/leaverequest/errors"
	"go-leavedesk/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaverequesterrors.ErrLeaveRequestNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 unique_violation, 23514 check_violation
		switch pgErr.Code {
		case "23505":
			return apperror.Wrap(err, apperror.CodeConflict, "leave request already exists", http.StatusConflict)
		case "23514":
			return apperror.Wrap(err, apperror.CodeInvalidInput, "leave request rejected by storage constraint", http.StatusBadRequest)
		}
	}

	return err
}
