package employeeerrors

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
	ErrEmpIDTaken = apperror.New(
		apperror.CodeConflict,
		"Employee ID is already in use",
		http.StatusConflict,
	)
	ErrInvalidEmpID = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID must be exactly 7 digits",
		http.StatusBadRequest,
	)
	ErrInvalidMobile = apperror.New(
		apperror.CodeInvalidInput,
		"Mobile number must be 10-15 digits with an optional leading +",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be a valid date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrAlreadyResigned = apperror.New(
		apperror.CodeConflict,
		"Employee has already resigned",
		http.StatusConflict,
	)
	ErrResignDateNotPast = apperror.New(
		apperror.CodeInvalidInput,
		"Resigning date must be before today",
		http.StatusBadRequest,
	)
)
