package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository gives the orchestrator ledger access plus the narrow window
// into the employees table it needs to keep the denormalized current
// pointers in sync. The open-entry lookups take row locks so two concurrent
// transitions cannot both close and reopen against the same open entry.
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	GetEmployeeCurrent(ctx context.Context, employeeID string) (*EmployeeCurrent, error)
	UpdateEmployeeBranch(ctx context.Context, employeeID string, branchID uuid.UUID) error
	UpdateEmployeeSalary(ctx context.Context, employeeID string, salary float64) error
	UpdateEmployeePromotion(ctx context.Context, employeeID string, dept, subDept, cat, desig uuid.UUID) error

	FindOpenBranchEntryForUpdate(ctx context.Context, employeeID string) (*BranchHistory, error)
	HasOpenBranchEntry(ctx context.Context, employeeID string) (bool, error)
	CloseBranchEntry(ctx context.Context, id uuid.UUID, endDate time.Time) error
	CreateBranchEntry(ctx context.Context, e *BranchHistory) error
	ListBranchHistory(ctx context.Context, employeeID string) ([]BranchHistory, error)

	FindOpenSalaryEntryForUpdate(ctx context.Context, employeeID string) (*SalaryHistory, error)
	HasOpenSalaryEntry(ctx context.Context, employeeID string) (bool, error)
	CloseSalaryEntry(ctx context.Context, id uuid.UUID, endDate time.Time) error
	CreateSalaryEntry(ctx context.Context, e *SalaryHistory) error
	ListSalaryHistory(ctx context.Context, employeeID string) ([]SalaryHistory, error)

	FindOpenPromotionEntriesForUpdate(ctx context.Context, employeeID string) ([]PromotionHistory, error)
	HasOpenPromotionEntry(ctx context.Context, employeeID string) (bool, error)
	ClosePromotionEntry(ctx context.Context, id uuid.UUID, endDate time.Time) error
	CreatePromotionEntry(ctx context.Context, e *PromotionHistory) error
	ListPromotionHistory(ctx context.Context, employeeID string) ([]PromotionHistory, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the gorm session onto the caller's transaction so every
// statement, the row locks included, joins it instead of auto-committing.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// --- employee current state ---

func (r *repository) GetEmployeeCurrent(ctx context.Context, employeeID string) (*EmployeeCurrent, error) {
	var ec EmployeeCurrent
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id", "emp_id", "company_id", "branch_id", "department_id",
			"sub_department_id", "category_id", "designation_id",
			"salary", "joining_date", "status").
		Where("id = ?", employeeID).
		Take(&ec).Error
	if err != nil {
		return nil, err
	}
	return &ec, nil
}

func (r *repository) UpdateEmployeeBranch(ctx context.Context, employeeID string, branchID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Updates(map[string]any{"branch_id": branchID, "updated_at": time.Now()}).Error
}

func (r *repository) UpdateEmployeeSalary(ctx context.Context, employeeID string, salary float64) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Updates(map[string]any{"salary": salary, "updated_at": time.Now()}).Error
}

func (r *repository) UpdateEmployeePromotion(ctx context.Context, employeeID string, dept, subDept, cat, desig uuid.UUID) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Updates(map[string]any{
			"department_id":     dept,
			"sub_department_id": subDept,
			"category_id":       cat,
			"designation_id":    desig,
			"updated_at":        time.Now(),
		}).Error
}

// --- branch ledger ---

func (r *repository) FindOpenBranchEntryForUpdate(ctx context.Context, employeeID string) (*BranchHistory, error) {
	var e BranchHistory
	err := forUpdate(r.db.WithContext(ctx)).
		Where("employee_id = ? AND end_date IS NULL", employeeID).
		Take(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) HasOpenBranchEntry(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BranchHistory{}).
		Where("employee_id = ? AND end_date IS NULL", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CloseBranchEntry(ctx context.Context, id uuid.UUID, endDate time.Time) error {
	return r.db.WithContext(ctx).Model(&BranchHistory{}).
		Where("id = ?", id).
		Updates(map[string]any{"end_date": endDate, "status": StatusInactive}).Error
}

func (r *repository) CreateBranchEntry(ctx context.Context, e *BranchHistory) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) ListBranchHistory(ctx context.Context, employeeID string) ([]BranchHistory, error) {
	var entries []BranchHistory
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date ASC").
		Find(&entries).Error
	return entries, err
}

// --- salary ledger ---

func (r *repository) FindOpenSalaryEntryForUpdate(ctx context.Context, employeeID string) (*SalaryHistory, error) {
	var e SalaryHistory
	err := forUpdate(r.db.WithContext(ctx)).
		Where("employee_id = ? AND end_date IS NULL", employeeID).
		Take(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) HasOpenSalaryEntry(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SalaryHistory{}).
		Where("employee_id = ? AND end_date IS NULL", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CloseSalaryEntry(ctx context.Context, id uuid.UUID, endDate time.Time) error {
	return r.db.WithContext(ctx).Model(&SalaryHistory{}).
		Where("id = ?", id).
		Updates(map[string]any{"end_date": endDate, "status": StatusInactive}).Error
}

func (r *repository) CreateSalaryEntry(ctx context.Context, e *SalaryHistory) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) ListSalaryHistory(ctx context.Context, employeeID string) ([]SalaryHistory, error) {
	var entries []SalaryHistory
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date ASC").
		Find(&entries).Error
	return entries, err
}

// --- promotion ledger ---

func (r *repository) FindOpenPromotionEntriesForUpdate(ctx context.Context, employeeID string) ([]PromotionHistory, error) {
	var entries []PromotionHistory
	err := forUpdate(r.db.WithContext(ctx)).
		Where("employee_id = ? AND end_date IS NULL", employeeID).
		Find(&entries).Error
	return entries, err
}

func (r *repository) HasOpenPromotionEntry(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PromotionHistory{}).
		Where("employee_id = ? AND end_date IS NULL", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ClosePromotionEntry(ctx context.Context, id uuid.UUID, endDate time.Time) error {
	return r.db.WithContext(ctx).Model(&PromotionHistory{}).
		Where("id = ?", id).
		Updates(map[string]any{"end_date": endDate, "status": StatusInactive}).Error
}

func (r *repository) CreatePromotionEntry(ctx context.Context, e *PromotionHistory) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) ListPromotionHistory(ctx context.Context, employeeID string) ([]PromotionHistory, error) {
	var entries []PromotionHistory
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date ASC").
		Find(&entries).Error
	return entries, err
}
