package organization

import (
	"errors"

	organizationerrors "github.com/businessanalystdm/projecthrm/internal/organization/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return organizationerrors.ErrNodeNotFound
	}

	return err
}
