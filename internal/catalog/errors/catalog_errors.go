package catalogerrors

import (
	"net/http"

	"github.com/businessanalystdm/projecthrm/internal/shared/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Catalog item not found",
		http.StatusNotFound,
	)
	ErrItemInUse = apperror.New(
		apperror.CodeConflict,
		"Cannot delete: employee records still reference this item",
		http.StatusConflict,
	)
)
