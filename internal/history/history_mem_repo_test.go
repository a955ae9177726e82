package history_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/businessanalystdm/projecthrm/internal/history"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memRepository is an in-memory history.Repository used by the service and
// property tests. Locking is a no-op: the tests exercise invariants, not
// the database.
type memRepository struct {
	employees map[string]*history.EmployeeCurrent
	branch    []history.BranchHistory
	salary    []history.SalaryHistory
	promotion []history.PromotionHistory
}

func newMemRepository() *memRepository {
	return &memRepository{employees: make(map[string]*history.EmployeeCurrent)}
}

func (m *memRepository) addEmployee(emp history.EmployeeCurrent) {
	m.employees[emp.ID.String()] = &emp
}

func (m *memRepository) WithTx(tx *sql.Tx) history.Repository { return m }

func (m *memRepository) GetEmployeeCurrent(ctx context.Context, employeeID string) (*history.EmployeeCurrent, error) {
	emp, ok := m.employees[employeeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *emp
	return &cp, nil
}

func (m *memRepository) UpdateEmployeeBranch(ctx context.Context, employeeID string, branchID uuid.UUID) error {
	m.employees[employeeID].BranchID = branchID
	return nil
}

func (m *memRepository) UpdateEmployeeSalary(ctx context.Context, employeeID string, salary float64) error {
	m.employees[employeeID].Salary = salary
	return nil
}

func (m *memRepository) UpdateEmployeePromotion(ctx context.Context, employeeID string, dept, subDept, cat, desig uuid.UUID) error {
	emp := m.employees[employeeID]
	emp.DepartmentID = dept
	emp.SubDepartmentID = subDept
	emp.CategoryID = cat
	emp.DesignationID = desig
	return nil
}

func (m *memRepository) FindOpenBranchEntryForUpdate(ctx context.Context, employeeID string) (*history.BranchHistory, error) {
	for i := range m.branch {
		if m.branch[i].EmployeeID.String() == employeeID && m.branch[i].EndDate == nil {
			cp := m.branch[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepository) HasOpenBranchEntry(ctx context.Context, employeeID string) (bool, error) {
	_, err := m.FindOpenBranchEntryForUpdate(ctx, employeeID)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (m *memRepository) CloseBranchEntry(ctx context.Context, id uuid.UUID, endDate time.Time) error {
	for i := range m.branch {
		if m.branch[i].ID == id {
			d := endDate
			m.branch[i].EndDate = &d
			m.branch[i].Status = history.StatusInactive
		}
	}
	return nil
}

func (m *memRepository) CreateBranchEntry(ctx context.Context, e *history.BranchHistory) error {
	m.branch = append(m.branch, *e)
	return nil
}

func (m *memRepository) ListBranchHistory(ctx context.Context, employeeID string) ([]history.BranchHistory, error) {
	var out []history.BranchHistory
	for _, e := range m.branch {
		if e.EmployeeID.String() == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepository) FindOpenSalaryEntryForUpdate(ctx context.Context, employeeID string) (*history.SalaryHistory, error) {
	for i := range m.salary {
		if m.salary[i].EmployeeID.String() == employeeID && m.salary[i].EndDate == nil {
			cp := m.salary[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepository) HasOpenSalaryEntry(ctx context.Context, employeeID string) (bool, error) {
	_, err := m.FindOpenSalaryEntryForUpdate(ctx, employeeID)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (m *memRepository) CloseSalaryEntry(ctx context.Context, id uuid.UUID, endDate time.Time) error {
	for i := range m.salary {
		if m.salary[i].ID == id {
			d := endDate
			m.salary[i].EndDate = &d
			m.salary[i].Status = history.StatusInactive
		}
	}
	return nil
}

func (m *memRepository) CreateSalaryEntry(ctx context.Context, e *history.SalaryHistory) error {
	m.salary = append(m.salary, *e)
	return nil
}

func (m *memRepository) ListSalaryHistory(ctx context.Context, employeeID string) ([]history.SalaryHistory, error) {
	var out []history.SalaryHistory
	for _, e := range m.salary {
		if e.EmployeeID.String() == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepository) FindOpenPromotionEntriesForUpdate(ctx context.Context, employeeID string) ([]history.PromotionHistory, error) {
	var out []history.PromotionHistory
	for _, e := range m.promotion {
		if e.EmployeeID.String() == employeeID && e.EndDate == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memRepository) HasOpenPromotionEntry(ctx context.Context, employeeID string) (bool, error) {
	open, _ := m.FindOpenPromotionEntriesForUpdate(ctx, employeeID)
	return len(open) > 0, nil
}

func (m *memRepository) ClosePromotionEntry(ctx context.Context, id uuid.UUID, endDate time.Time) error {
	for i := range m.promotion {
		if m.promotion[i].ID == id {
			d := endDate
			m.promotion[i].EndDate = &d
			m.promotion[i].Status = history.StatusInactive
		}
	}
	return nil
}

func (m *memRepository) CreatePromotionEntry(ctx context.Context, e *history.PromotionHistory) error {
	m.promotion = append(m.promotion, *e)
	return nil
}

func (m *memRepository) ListPromotionHistory(ctx context.Context, employeeID string) ([]history.PromotionHistory, error) {
	var out []history.PromotionHistory
	for _, e := range m.promotion {
		if e.EmployeeID.String() == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

// openCount reports how many entries are open per ledger for one employee.
func (m *memRepository) openCount(employeeID string) (branch, salary, promotion int) {
	for _, e := range m.branch {
		if e.EmployeeID.String() == employeeID && e.EndDate == nil {
			branch++
		}
	}
	for _, e := range m.salary {
		if e.EmployeeID.String() == employeeID && e.EndDate == nil {
			salary++
		}
	}
	for _, e := range m.promotion {
		if e.EmployeeID.String() == employeeID && e.EndDate == nil {
			promotion++
		}
	}
	return
}

// closedIntervalsValid reports whether every closed entry ends on or after
// its start date.
func (m *memRepository) closedIntervalsValid() bool {
	for _, e := range m.branch {
		if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
			return false
		}
	}
	for _, e := range m.salary {
		if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
			return false
		}
	}
	for _, e := range m.promotion {
		if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
			return false
		}
	}
	return true
}
