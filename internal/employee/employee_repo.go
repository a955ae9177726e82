package employee

import (
	"context"
	"database/sql"

	"github.com/businessanalystdm/projecthrm/internal/catalog"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmpID(ctx context.Context, empID string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error

	FindResigned(ctx context.Context) ([]Employee, error)
	FindWithLedgerActivity(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]EmployeeOption, error)

	ReplaceSkills(ctx context.Context, e *Employee, skills []catalog.Skill) error
	ReplaceAssets(ctx context.Context, e *Employee, assets []catalog.Asset) error
	ClearAssets(ctx context.Context, e *Employee) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	q := r.db.WithContext(ctx).Preload("Skills").Preload("Assets")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.BranchID != "" {
		q = q.Where("branch_id = ?", filter.BranchID)
	}
	if filter.CompanyID != "" {
		q = q.Where("company_id = ?", filter.CompanyID)
	}

	var employees []Employee
	err := q.Order("emp_id ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("Skills").
		Preload("Assets").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmpID(ctx context.Context, empID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "emp_id = ?", empID).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Omit("Skills", "Assets").Save(e).Error
}

func (r *repository) FindResigned(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("status = ? AND resigning_date IS NOT NULL", StatusInactive).
		Order("resigning_date DESC").
		Find(&employees).Error
	return employees, err
}

// FindWithLedgerActivity lists employees whose career moved after hire:
// more than one entry in any of the three history ledgers.
func (r *repository) FindWithLedgerActivity(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where(`id IN (
			SELECT employee_id FROM branch_histories GROUP BY employee_id HAVING COUNT(*) > 1
			UNION
			SELECT employee_id FROM salary_histories GROUP BY employee_id HAVING COUNT(*) > 1
			UNION
			SELECT employee_id FROM promotion_histories GROUP BY employee_id HAVING COUNT(*) > 1
		)`).
		Order("emp_id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptions(ctx context.Context) ([]EmployeeOption, error) {
	var options []EmployeeOption
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id::text AS id", "emp_id", "first_name || ' ' || last_name AS full_name").
		Where("status = ?", StatusActive).
		Order("emp_id ASC").
		Scan(&options).Error
	return options, err
}

func (r *repository) ReplaceSkills(ctx context.Context, e *Employee, skills []catalog.Skill) error {
	return r.db.WithContext(ctx).Model(e).Association("Skills").Replace(skills)
}

func (r *repository) ReplaceAssets(ctx context.Context, e *Employee, assets []catalog.Asset) error {
	return r.db.WithContext(ctx).Model(e).Association("Assets").Replace(assets)
}

func (r *repository) ClearAssets(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Model(e).Association("Assets").Clear()
}
