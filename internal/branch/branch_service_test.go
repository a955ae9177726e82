package branch_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/businessanalystdm/projecthrm/internal/branch"
	brancherrors "github.com/businessanalystdm/projecthrm/internal/branch/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeBranchRepository struct {
	createZoneFn      func(ctx context.Context, z *branch.Zone) error
	findZoneByIDFn    func(ctx context.Context, id string) (*branch.Zone, error)
	zoneHasBranchesFn func(ctx context.Context, id string) (bool, error)
	deleteZoneFn      func(ctx context.Context, id string) error

	createBranchFn     func(ctx context.Context, b *branch.Branch) error
	findBranchByIDFn   func(ctx context.Context, id string) (*branch.Branch, error)
	findBranchByCodeFn func(ctx context.Context, code string) (*branch.Branch, error)
	branchInUseFn      func(ctx context.Context, id string) (bool, error)
	deleteBranchFn     func(ctx context.Context, id string) error
}

func (f *fakeBranchRepository) WithTx(tx *sql.Tx) branch.Repository { return f }

func (f *fakeBranchRepository) CreateZone(ctx context.Context, z *branch.Zone) error {
	if f.createZoneFn != nil {
		return f.createZoneFn(ctx, z)
	}
	return nil
}

func (f *fakeBranchRepository) FindAllZones(ctx context.Context, activeOnly bool) ([]branch.Zone, error) {
	return nil, nil
}

func (f *fakeBranchRepository) FindZoneByID(ctx context.Context, id string) (*branch.Zone, error) {
	if f.findZoneByIDFn != nil {
		return f.findZoneByIDFn(ctx, id)
	}
	return &branch.Zone{ID: uuid.MustParse(id), Status: branch.StatusActive}, nil
}

func (f *fakeBranchRepository) UpdateZone(ctx context.Context, z *branch.Zone) error { return nil }

func (f *fakeBranchRepository) DeleteZone(ctx context.Context, id string) error {
	if f.deleteZoneFn != nil {
		return f.deleteZoneFn(ctx, id)
	}
	return nil
}

func (f *fakeBranchRepository) ZoneHasBranches(ctx context.Context, id string) (bool, error) {
	if f.zoneHasBranchesFn != nil {
		return f.zoneHasBranchesFn(ctx, id)
	}
	return false, nil
}

func (f *fakeBranchRepository) CreateBranch(ctx context.Context, b *branch.Branch) error {
	if f.createBranchFn != nil {
		return f.createBranchFn(ctx, b)
	}
	return nil
}

func (f *fakeBranchRepository) FindBranchesByZone(ctx context.Context, zoneID string, activeOnly bool) ([]branch.Branch, error) {
	return nil, nil
}

func (f *fakeBranchRepository) FindAllBranches(ctx context.Context, activeOnly bool) ([]branch.Branch, error) {
	return nil, nil
}

func (f *fakeBranchRepository) FindBranchByID(ctx context.Context, id string) (*branch.Branch, error) {
	if f.findBranchByIDFn != nil {
		return f.findBranchByIDFn(ctx, id)
	}
	return &branch.Branch{ID: uuid.MustParse(id), Status: branch.StatusActive}, nil
}

func (f *fakeBranchRepository) FindBranchByCode(ctx context.Context, code string) (*branch.Branch, error) {
	if f.findBranchByCodeFn != nil {
		return f.findBranchByCodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBranchRepository) UpdateBranch(ctx context.Context, b *branch.Branch) error { return nil }

func (f *fakeBranchRepository) DeleteBranch(ctx context.Context, id string) error {
	if f.deleteBranchFn != nil {
		return f.deleteBranchFn(ctx, id)
	}
	return nil
}

func (f *fakeBranchRepository) BranchInUse(ctx context.Context, id string) (bool, error) {
	if f.branchInUseFn != nil {
		return f.branchInUseFn(ctx, id)
	}
	return false, nil
}

type branchServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service branch.Service
	repo    *fakeBranchRepository
}

func setupServiceTest(t *testing.T) *branchServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeBranchRepository{}
	svc := branch.NewService(db, repo)

	return &branchServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestBranchService_CreateBranch(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	zoneID := uuid.New()

	t.Run("success", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.createBranchFn = func(ctx context.Context, b *branch.Branch) error {
			assert.Equal(t, "Mirpur Branch", b.Name)
			assert.Equal(t, "MPR", b.Code)
			assert.Equal(t, zoneID, b.ZoneID)
			assert.Equal(t, branch.StatusActive, b.Status)
			return nil
		}

		resp, err := deps.service.CreateBranch(ctx, branch.CreateBranchRequest{
			Name:   "Mirpur Branch",
			Code:   "MPR",
			ZoneID: zoneID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "MPR", resp.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects lowercase code", func(t *testing.T) {
		_, err := deps.service.CreateBranch(ctx, branch.CreateBranchRequest{
			Name:   "Mirpur Branch",
			Code:   "mpr",
			ZoneID: zoneID.String(),
		})

		assert.ErrorIs(t, err, brancherrors.ErrInvalidBranchCode)
	})

	t.Run("rejects code over five letters", func(t *testing.T) {
		_, err := deps.service.CreateBranch(ctx, branch.CreateBranchRequest{
			Name:   "Mirpur Branch",
			Code:   "MIRPUR",
			ZoneID: zoneID.String(),
		})

		assert.ErrorIs(t, err, brancherrors.ErrInvalidBranchCode)
	})

	t.Run("duplicate code", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.findBranchByCodeFn = func(ctx context.Context, code string) (*branch.Branch, error) {
			return &branch.Branch{ID: uuid.New(), Code: code}, nil
		}
		defer func() { deps.repo.findBranchByCodeFn = nil }()

		_, err := deps.service.CreateBranch(ctx, branch.CreateBranchRequest{
			Name:   "Mirpur Branch",
			Code:   "MPR",
			ZoneID: zoneID.String(),
		})

		assert.ErrorIs(t, err, brancherrors.ErrBranchCodeTaken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown zone", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.findZoneByIDFn = func(ctx context.Context, id string) (*branch.Zone, error) {
			return nil, gorm.ErrRecordNotFound
		}
		defer func() { deps.repo.findZoneByIDFn = nil }()

		_, err := deps.service.CreateBranch(ctx, branch.CreateBranchRequest{
			Name:   "Mirpur Branch",
			Code:   "MPR",
			ZoneID: zoneID.String(),
		})

		assert.ErrorIs(t, err, brancherrors.ErrZoneNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestBranchService_DeleteZone(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	zoneID := uuid.New().String()

	t.Run("refused while branches exist", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.zoneHasBranchesFn = func(ctx context.Context, id string) (bool, error) {
			return true, nil
		}

		err := deps.service.DeleteZone(ctx, zoneID)

		assert.ErrorIs(t, err, brancherrors.ErrZoneHasBranches)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.zoneHasBranchesFn = func(ctx context.Context, id string) (bool, error) {
			return false, nil
		}
		deleted := false
		deps.repo.deleteZoneFn = func(ctx context.Context, id string) error {
			deleted = true
			return nil
		}

		err := deps.service.DeleteZone(ctx, zoneID)

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestBranchService_DeleteBranch(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	branchID := uuid.New().String()

	t.Run("refused while referenced", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.branchInUseFn = func(ctx context.Context, id string) (bool, error) {
			return true, nil
		}

		err := deps.service.DeleteBranch(ctx, branchID)

		assert.ErrorIs(t, err, brancherrors.ErrBranchInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repo error bubbles up", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.branchInUseFn = func(ctx context.Context, id string) (bool, error) {
			return false, errors.New("db error")
		}

		err := deps.service.DeleteBranch(ctx, branchID)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
