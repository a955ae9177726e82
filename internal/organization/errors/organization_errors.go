package organizationerrors

import (
	"net/http"

	"github.com/businessanalystdm/projecthrm/internal/shared/apperror"
)

var (
	ErrNodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization node not found",
		http.StatusNotFound,
	)
	ErrNodeHasDependents = apperror.New(
		apperror.CodeConflict,
		"Cannot delete: other records still reference this node",
		http.StatusConflict,
	)
	ErrDepartmentNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"Department does not belong to the selected company",
		http.StatusBadRequest,
	)
	ErrSubDepartmentNotInDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Sub-department does not belong to the selected department",
		http.StatusBadRequest,
	)
	ErrCategoryNotInSubDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Category does not belong to the selected sub-department",
		http.StatusBadRequest,
	)
	ErrDesignationNotInCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Designation does not belong to the selected category",
		http.StatusBadRequest,
	)
)
