package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/businessanalystdm/projecthrm/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapEmployeeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "emp_id") {
			return employeeerrors.ErrEmpIDTaken
		}
	}

	// gorm wraps driver errors on some paths; fall back to the message.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "emp_id") {
		return employeeerrors.ErrEmpIDTaken
	}

	return err
}
