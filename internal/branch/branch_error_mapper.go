package branch

import (
	"errors"

	brancherrors "github.com/businessanalystdm/projecthrm/internal/branch/errors"

	"gorm.io/gorm"
)

func mapZoneError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return brancherrors.ErrZoneNotFound
	}
	return err
}

func mapBranchError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return brancherrors.ErrBranchNotFound
	}
	return err
}
