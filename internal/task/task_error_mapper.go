package task

import (
	"errors"
	"strings"

	taskerrors "hivedesk/internal/task/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapAssignmentError translates persistence errors on assignments. Duplicate
// assignment is enforced by uq_task_assignment_employee_task in the store.
func MapAssignmentError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrAssignmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_task_assignment_employee_task" {
			return taskerrors.ErrAlreadyAssigned
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_task_assignment_employee_task") {
		return taskerrors.ErrAlreadyAssigned
	}

	return err
}

func MapTaskError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrTaskNotFound
	}
	return err
}
