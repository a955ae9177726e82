package branch

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateZone(ctx context.Context, z *Zone) error
	FindAllZones(ctx context.Context, activeOnly bool) ([]Zone, error)
	FindZoneByID(ctx context.Context, id string) (*Zone, error)
	UpdateZone(ctx context.Context, z *Zone) error
	DeleteZone(ctx context.Context, id string) error
	ZoneHasBranches(ctx context.Context, id string) (bool, error)

	CreateBranch(ctx context.Context, b *Branch) error
	FindBranchesByZone(ctx context.Context, zoneID string, activeOnly bool) ([]Branch, error)
	FindAllBranches(ctx context.Context, activeOnly bool) ([]Branch, error)
	FindBranchByID(ctx context.Context, id string) (*Branch, error)
	FindBranchByCode(ctx context.Context, code string) (*Branch, error)
	UpdateBranch(ctx context.Context, b *Branch) error
	DeleteBranch(ctx context.Context, id string) error
	BranchInUse(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func activeScope(activeOnly bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if activeOnly {
			return db.Where("status = ?", StatusActive)
		}
		return db
	}
}

func (r *repository) CreateZone(ctx context.Context, z *Zone) error {
	return r.db.WithContext(ctx).Create(z).Error
}

func (r *repository) FindAllZones(ctx context.Context, activeOnly bool) ([]Zone, error) {
	var zones []Zone
	err := r.db.WithContext(ctx).
		Scopes(activeScope(activeOnly)).
		Order("name ASC").
		Find(&zones).Error
	return zones, err
}

func (r *repository) FindZoneByID(ctx context.Context, id string) (*Zone, error) {
	var z Zone
	err := r.db.WithContext(ctx).First(&z, "id = ?", id).Error
	return &z, err
}

func (r *repository) UpdateZone(ctx context.Context, z *Zone) error {
	return r.db.WithContext(ctx).Save(z).Error
}

func (r *repository) DeleteZone(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Zone{}, "id = ?", id).Error
}

func (r *repository) ZoneHasBranches(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Branch{}).
		Where("zone_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateBranch(ctx context.Context, b *Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindBranchesByZone(ctx context.Context, zoneID string, activeOnly bool) ([]Branch, error) {
	var branches []Branch
	err := r.db.WithContext(ctx).
		Scopes(activeScope(activeOnly)).
		Where("zone_id = ?", zoneID).
		Order("name ASC").
		Find(&branches).Error
	return branches, err
}

func (r *repository) FindAllBranches(ctx context.Context, activeOnly bool) ([]Branch, error) {
	var branches []Branch
	err := r.db.WithContext(ctx).
		Scopes(activeScope(activeOnly)).
		Order("code ASC").
		Find(&branches).Error
	return branches, err
}

func (r *repository) FindBranchByID(ctx context.Context, id string) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *repository) FindBranchByCode(ctx context.Context, code string) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).First(&b, "code = ?", code).Error
	return &b, err
}

func (r *repository) UpdateBranch(ctx context.Context, b *Branch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) DeleteBranch(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Branch{}, "id = ?", id).Error
}

// BranchInUse reports whether any employee row or branch history entry still
// points at the branch.
func (r *repository) BranchInUse(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("branch_id = ?", id).
		Count(&count).Error
	if err != nil || count > 0 {
		return count > 0, err
	}
	err = r.db.WithContext(ctx).
		Table("branch_histories").
		Where("branch_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
