package historyerrors

import (
	"net/http"

	"github.com/businessanalystdm/projecthrm/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrBranchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Branch not found",
		http.StatusNotFound,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be a valid date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrBackdatedTransfer = apperror.New(
		apperror.CodeInvalidInput,
		"Transfer start date cannot be in the past",
		http.StatusBadRequest,
	)
	ErrSameBranch = apperror.New(
		apperror.CodeInvalidInput,
		"Employee is already assigned to this branch",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must be greater than 0.01",
		http.StatusBadRequest,
	)
	ErrSalaryNotIncreased = apperror.New(
		apperror.CodeInvalidInput,
		"New salary must be greater than the current salary",
		http.StatusBadRequest,
	)
	ErrFutureStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"Promotion start date cannot be in the future",
		http.StatusBadRequest,
	)
	ErrStartBeforeJoining = apperror.New(
		apperror.CodeInvalidInput,
		"Start date cannot be before the employee's joining date",
		http.StatusBadRequest,
	)
	ErrNoOpPromotion = apperror.New(
		apperror.CodeInvalidInput,
		"Promotion target matches the employee's current position",
		http.StatusBadRequest,
	)
	ErrUnknownKind = apperror.New(
		apperror.CodeInvalidInput,
		"History kind must be branch, salary or promotion",
		http.StatusBadRequest,
	)
)
