package brancherrors

import (
	"net/http"

	"github.com/businessanalystdm/projecthrm/internal/shared/apperror"
)

var (
	ErrZoneNotFound = apperror.New(
		apperror.CodeNotFound,
		"Zone not found",
		http.StatusNotFound,
	)
	ErrBranchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Branch not found",
		http.StatusNotFound,
	)
	ErrInvalidBranchCode = apperror.New(
		apperror.CodeInvalidInput,
		"Branch code must be 1-5 uppercase letters",
		http.StatusBadRequest,
	)
	ErrBranchCodeTaken = apperror.New(
		apperror.CodeConflict,
		"Branch code is already in use",
		http.StatusConflict,
	)
	ErrZoneHasBranches = apperror.New(
		apperror.CodeConflict,
		"Cannot delete: branches still reference this zone",
		http.StatusConflict,
	)
	ErrBranchInUse = apperror.New(
		apperror.CodeConflict,
		"Cannot delete: employee records still reference this branch",
		http.StatusConflict,
	)
)
