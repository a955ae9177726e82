package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/businessanalystdm/projecthrm/internal/branch"
	"github.com/businessanalystdm/projecthrm/internal/catalog"
	"github.com/businessanalystdm/projecthrm/internal/employee"
	employeeerrors "github.com/businessanalystdm/projecthrm/internal/employee/errors"
	"github.com/businessanalystdm/projecthrm/internal/events"
	"github.com/businessanalystdm/projecthrm/internal/history"
	historyerrors "github.com/businessanalystdm/projecthrm/internal/history/errors"
	"github.com/businessanalystdm/projecthrm/internal/messaging/kafka"
	"github.com/businessanalystdm/projecthrm/internal/organization"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn       func(ctx context.Context, e *employee.Employee) error
	findByIDFn     func(ctx context.Context, id string) (*employee.Employee, error)
	findByEmpIDFn  func(ctx context.Context, empID string) (*employee.Employee, error)
	findAllFn      func(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error)
	findResignedFn func(ctx context.Context) ([]employee.Employee, error)
	findMovedFn    func(ctx context.Context) ([]employee.Employee, error)
	findOptionsFn  func(ctx context.Context) ([]employee.EmployeeOption, error)

	created       []*employee.Employee
	updated       []*employee.Employee
	skillsSet     [][]catalog.Skill
	assetsSet     [][]catalog.Asset
	assetsCleared int
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	f.created = append(f.created, e)
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByEmpID(ctx context.Context, empID string) (*employee.Employee, error) {
	if f.findByEmpIDFn != nil {
		return f.findByEmpIDFn(ctx, empID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	f.updated = append(f.updated, e)
	return nil
}

func (f *fakeEmployeeRepository) FindResigned(ctx context.Context) ([]employee.Employee, error) {
	if f.findResignedFn != nil {
		return f.findResignedFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindWithLedgerActivity(ctx context.Context) ([]employee.Employee, error) {
	if f.findMovedFn != nil {
		return f.findMovedFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	if f.findOptionsFn != nil {
		return f.findOptionsFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) ReplaceSkills(ctx context.Context, e *employee.Employee, skills []catalog.Skill) error {
	f.skillsSet = append(f.skillsSet, skills)
	return nil
}

func (f *fakeEmployeeRepository) ReplaceAssets(ctx context.Context, e *employee.Employee, assets []catalog.Asset) error {
	f.assetsSet = append(f.assetsSet, assets)
	return nil
}

func (f *fakeEmployeeRepository) ClearAssets(ctx context.Context, e *employee.Employee) error {
	f.assetsCleared++
	return nil
}

type fakeLedgerService struct {
	history.Service

	seedCalls   int
	transferFn  func(ctx context.Context, qtx history.Repository, emp *history.EmployeeCurrent, branchID uuid.UUID, startDate time.Time) error
	incrementFn func(ctx context.Context, qtx history.Repository, emp *history.EmployeeCurrent, salary float64, startDate time.Time) error
	promoteFn   func(ctx context.Context, qtx history.Repository, emp *history.EmployeeCurrent, dept, subDept, cat, desig uuid.UUID, startDate time.Time) error
}

func (f *fakeLedgerService) SeedLedgers(ctx context.Context, qtx history.Repository, emp *history.EmployeeCurrent) error {
	f.seedCalls++
	return nil
}

func (f *fakeLedgerService) ApplyTransfer(ctx context.Context, qtx history.Repository, emp *history.EmployeeCurrent, branchID uuid.UUID, startDate time.Time) error {
	if f.transferFn != nil {
		return f.transferFn(ctx, qtx, emp, branchID, startDate)
	}
	emp.BranchID = branchID
	return nil
}

func (f *fakeLedgerService) ApplyIncrement(ctx context.Context, qtx history.Repository, emp *history.EmployeeCurrent, salary float64, startDate time.Time) error {
	if f.incrementFn != nil {
		return f.incrementFn(ctx, qtx, emp, salary, startDate)
	}
	if salary <= emp.Salary {
		return historyerrors.ErrSalaryNotIncreased
	}
	emp.Salary = salary
	return nil
}

func (f *fakeLedgerService) ApplyPromotion(ctx context.Context, qtx history.Repository, emp *history.EmployeeCurrent, dept, subDept, cat, desig uuid.UUID, startDate time.Time) error {
	if f.promoteFn != nil {
		return f.promoteFn(ctx, qtx, emp, dept, subDept, cat, desig, startDate)
	}
	emp.DepartmentID = dept
	emp.SubDepartmentID = subDept
	emp.CategoryID = cat
	emp.DesignationID = desig
	return nil
}

type fakeLedgerRepo struct {
	history.Repository
}

func (f *fakeLedgerRepo) WithTx(tx *sql.Tx) history.Repository { return f }

type fakeChainValidator struct {
	organization.Service
	validateChainFn func(ctx context.Context, companyID, departmentID, subDepartmentID, categoryID, designationID string) error
}

func (f *fakeChainValidator) ValidateChain(ctx context.Context, companyID, departmentID, subDepartmentID, categoryID, designationID string) error {
	if f.validateChainFn != nil {
		return f.validateChainFn(ctx, companyID, departmentID, subDepartmentID, categoryID, designationID)
	}
	return nil
}

type fakeBranchLookup struct {
	branch.Repository
	findByIDFn func(ctx context.Context, id string) (*branch.Branch, error)
}

func (f *fakeBranchLookup) WithTx(tx *sql.Tx) branch.Repository { return f }

func (f *fakeBranchLookup) FindBranchByID(ctx context.Context, id string) (*branch.Branch, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &branch.Branch{ID: uuid.MustParse(id), Status: branch.StatusActive}, nil
}

type fakeCatalogRepo struct {
	catalog.Repository
	findQualificationFn func(ctx context.Context, id string) (*catalog.Qualification, error)
	findAssetsFn        func(ctx context.Context, ids []string) ([]catalog.Asset, error)
}

func (f *fakeCatalogRepo) WithTx(tx *sql.Tx) catalog.Repository { return f }

func (f *fakeCatalogRepo) FindQualificationByID(ctx context.Context, id string) (*catalog.Qualification, error) {
	if f.findQualificationFn != nil {
		return f.findQualificationFn(ctx, id)
	}
	return &catalog.Qualification{ID: uuid.MustParse(id), Name: "B.Tech"}, nil
}

func (f *fakeCatalogRepo) FindAssetsByIDs(ctx context.Context, ids []string) ([]catalog.Asset, error) {
	if f.findAssetsFn != nil {
		return f.findAssetsFn(ctx, ids)
	}
	assets := make([]catalog.Asset, len(ids))
	for i, id := range ids {
		assets[i] = catalog.Asset{ID: uuid.MustParse(id), Name: "Laptop"}
	}
	return assets, nil
}

type fakeCatalogService struct {
	catalog.Service
}

func (f *fakeCatalogService) GetOrCreateSkill(ctx context.Context, qtx catalog.Repository, name string) (*catalog.Skill, error) {
	return &catalog.Skill{ID: uuid.New(), Name: name}, nil
}

type fakeCounter struct {
	nextFn func(ctx context.Context, counterType string) (int64, error)
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if f.nextFn != nil {
		return f.nextFn(ctx, counterType)
	}
	return 42, nil
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

type employeeServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *fakeEmployeeRepository
	ledger    *fakeLedgerService
	org       *fakeChainValidator
	branch    *fakeBranchLookup
	catalog   *fakeCatalogRepo
	counter   *fakeCounter
	outbox    *fakeOutbox
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	dbRedis, redisMock := redismock.NewClientMock()

	repo := &fakeEmployeeRepository{}
	ledger := &fakeLedgerService{}
	org := &fakeChainValidator{}
	branchLookup := &fakeBranchLookup{}
	catalogRepo := &fakeCatalogRepo{}
	counters := &fakeCounter{}
	outbox := &fakeOutbox{}

	svc := employee.NewService(
		db, repo,
		&fakeLedgerRepo{}, ledger,
		org, branchLookup,
		catalogRepo, &fakeCatalogService{},
		counters, outbox, dbRedis,
	)

	return &employeeServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		ledger:    ledger,
		org:       org,
		branch:    branchLookup,
		catalog:   catalogRepo,
		counter:   counters,
		outbox:    outbox,
		redisMock: redisMock,
	}
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

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validHireRequest() employee.HireEmployeeRequest {
	return employee.HireEmployeeRequest{
		FirstName:       "Ravi",
		LastName:        "Kumar",
		Gender:          "male",
		Mobile:          "+919876543210",
		Email:           "ravi.kumar@example.com",
		CompanyID:       uuid.New().String(),
		BranchID:        uuid.New().String(),
		DepartmentID:    uuid.New().String(),
		SubDepartmentID: uuid.New().String(),
		CategoryID:      uuid.New().String(),
		DesignationID:   uuid.New().String(),
		Salary:          45000,
		JoiningDate:     time.Now().Format("2006-01-02"),
		SkillNames:      []string{"Golang", "SQL"},
	}
}

func storedEmployee() *employee.Employee {
	return &employee.Employee{
		ID:              uuid.New(),
		EmpID:           "1000001",
		FirstName:       "Ravi",
		LastName:        "Kumar",
		Gender:          "male",
		Mobile:          "+919876543210",
		Email:           "ravi.kumar@example.com",
		CompanyID:       uuid.New(),
		BranchID:        uuid.New(),
		DepartmentID:    uuid.New(),
		SubDepartmentID: uuid.New(),
		CategoryID:      uuid.New(),
		DesignationID:   uuid.New(),
		Salary:          45000,
		JoiningDate:     day(time.Now().AddDate(-1, 0, 0)),
		Status:          employee.StatusActive,
	}
}

func editRequestFor(e *employee.Employee) employee.EditEmployeeRequest {
	return employee.EditEmployeeRequest{
		EffectiveDate:   time.Now().Format("2006-01-02"),
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Gender:          e.Gender,
		Mobile:          e.Mobile,
		Email:           e.Email,
		BranchID:        e.BranchID.String(),
		DepartmentID:    e.DepartmentID.String(),
		SubDepartmentID: e.SubDepartmentID.String(),
		CategoryID:      e.CategoryID.String(),
		DesignationID:   e.DesignationID.String(),
		Salary:          e.Salary,
	}
}

func TestEmployeeService_Hire(t *testing.T) {
	t.Run("mints employee id when left blank", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.counter.nextFn = func(ctx context.Context, counterType string) (int64, error) {
			assert.Equal(t, "employee", counterType)
			return 123, nil
		}
		deps.redisMock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		resp, err := deps.service.Hire(context.Background(), validHireRequest())

		assert.NoError(t, err)
		assert.Equal(t, "0000123", resp.EmpID)
		assert.Equal(t, employee.StatusActive, resp.Status)
		assert.Len(t, deps.repo.created, 1)
		assert.Equal(t, 1, deps.ledger.seedCalls)

		assert.Len(t, deps.outbox.events, 1)
		assert.Equal(t, events.TypeEmployeeHired, deps.outbox.events[0].EventType)
		assert.Equal(t, events.EmployeeLifecycleTopic, deps.outbox.events[0].Topic)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("keeps a valid supplied employee id", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		req := validHireRequest()
		req.EmpID = "2000345"

		resp, err := deps.service.Hire(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "2000345", resp.EmpID)
	})

	t.Run("rejects a taken employee id", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByEmpIDFn = func(ctx context.Context, empID string) (*employee.Employee, error) {
			return storedEmployee(), nil
		}

		req := validHireRequest()
		req.EmpID = "1000001"

		_, err := deps.service.Hire(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmpIDTaken)
		assert.Empty(t, deps.repo.created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects a malformed mobile before opening a transaction", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validHireRequest()
		req.Mobile = "12345"

		_, err := deps.service.Hire(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidMobile)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("propagates a broken hierarchy chain", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		req := validHireRequest()
		deps.org.validateChainFn = func(ctx context.Context, companyID, departmentID, subDepartmentID, categoryID, designationID string) error {
			assert.Equal(t, req.CompanyID, companyID)
			return assert.AnError
		}

		_, err := deps.service.Hire(context.Background(), req)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, deps.repo.created)
	})
}

func TestEmployeeService_Edit(t *testing.T) {
	t.Run("profile-only edit touches no ledger", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		e := storedEmployee()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		req := editRequestFor(e)
		req.Address = "12 MG Road"
		req.SkillNames = []string{"Golang"}

		resp, err := deps.service.Edit(context.Background(), e.ID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "12 MG Road", resp.Address)
		assert.Equal(t, 0, deps.ledger.seedCalls)
		assert.Empty(t, deps.outbox.events)
		assert.Len(t, deps.repo.updated, 1)
		assert.Len(t, deps.repo.skillsSet, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("branch change routes through the transfer ledger", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		e := storedEmployee()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		newBranch := uuid.New()
		req := editRequestFor(e)
		req.BranchID = newBranch.String()

		var transferred uuid.UUID
		deps.ledger.transferFn = func(ctx context.Context, qtx history.Repository, emp *history.EmployeeCurrent, branchID uuid.UUID, startDate time.Time) error {
			transferred = branchID
			emp.BranchID = branchID
			return nil
		}

		resp, err := deps.service.Edit(context.Background(), e.ID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, newBranch, transferred)
		assert.Equal(t, newBranch.String(), resp.BranchID)

		assert.Len(t, deps.outbox.events, 1)
		assert.Equal(t, events.TypeBranchTransferred, deps.outbox.events[0].EventType)
	})

	t.Run("backdated branch change is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		e := storedEmployee()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		req := editRequestFor(e)
		req.BranchID = uuid.New().String()
		req.EffectiveDate = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

		_, err := deps.service.Edit(context.Background(), e.ID.String(), req)

		assert.ErrorIs(t, err, historyerrors.ErrBackdatedTransfer)
		assert.Empty(t, deps.repo.updated)
	})

	t.Run("salary cut is rejected by the increment rule", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		e := storedEmployee()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		req := editRequestFor(e)
		req.Salary = e.Salary - 5000

		_, err := deps.service.Edit(context.Background(), e.ID.String(), req)

		assert.ErrorIs(t, err, historyerrors.ErrSalaryNotIncreased)
	})

	t.Run("role change on a future date is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		e := storedEmployee()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		req := editRequestFor(e)
		req.DesignationID = uuid.New().String()
		req.EffectiveDate = time.Now().AddDate(0, 0, 3).Format("2006-01-02")

		_, err := deps.service.Edit(context.Background(), e.ID.String(), req)

		assert.ErrorIs(t, err, historyerrors.ErrFutureStartDate)
	})

	t.Run("role change validates the chain against the employee's company", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		e := storedEmployee()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		req := editRequestFor(e)
		req.DesignationID = uuid.New().String()

		var checkedCompany string
		deps.org.validateChainFn = func(ctx context.Context, companyID, departmentID, subDepartmentID, categoryID, designationID string) error {
			checkedCompany = companyID
			return nil
		}

		resp, err := deps.service.Edit(context.Background(), e.ID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, e.CompanyID.String(), checkedCompany)
		assert.Equal(t, req.DesignationID, resp.DesignationID)

		assert.Len(t, deps.outbox.events, 1)
		assert.Equal(t, events.TypeEmployeePromoted, deps.outbox.events[0].EventType)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		e := storedEmployee()
		_, err := deps.service.Edit(context.Background(), uuid.New().String(), editRequestFor(e))

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Resign(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		e := storedEmployee()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		req := employee.ResignEmployeeRequest{
			ResigningDate: time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
			Reason:        "relocation",
		}

		resp, err := deps.service.Resign(context.Background(), e.ID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, employee.StatusInactive, resp.Status)
		assert.Equal(t, "relocation", resp.ResignReason)
		assert.Equal(t, 1, deps.repo.assetsCleared)

		assert.Len(t, deps.outbox.events, 1)
		assert.Equal(t, events.TypeEmployeeResigned, deps.outbox.events[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("resigning date must be in the past", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := employee.ResignEmployeeRequest{
			ResigningDate: time.Now().Format("2006-01-02"),
		}

		_, err := deps.service.Resign(context.Background(), uuid.New().String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrResignDateNotPast)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already resigned", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		e := storedEmployee()
		e.Status = employee.StatusInactive
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		req := employee.ResignEmployeeRequest{
			ResigningDate: time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		}

		_, err := deps.service.Resign(context.Background(), e.ID.String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrAlreadyResigned)
		assert.Empty(t, deps.outbox.events)
	})
}

func TestEmployeeService_Reads(t *testing.T) {
	t.Run("work duration and rating due are derived", func(t *testing.T) {
		deps := setupServiceTest(t)

		e := storedEmployee()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		resp, err := deps.service.GetByID(context.Background(), e.ID.String())

		assert.NoError(t, err)
		assert.Greater(t, resp.WorkDurationDays, 300)
		assert.True(t, resp.IsRatingDue)
	})

	t.Run("recently rated employee is not due", func(t *testing.T) {
		deps := setupServiceTest(t)

		e := storedEmployee()
		rated := day(time.Now().AddDate(0, -1, 0))
		e.Rating = employee.RatingGood
		e.LastRatingDate = &rated
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return e, nil
		}

		resp, err := deps.service.GetByID(context.Background(), e.ID.String())

		assert.NoError(t, err)
		assert.False(t, resp.IsRatingDue)
	})

	t.Run("options are served from a warm cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redisMock.ExpectGet(employee.OptionsCacheKey).
			SetVal(`[{"id":"abc","emp_id":"1000001","full_name":"Ravi Kumar"}]`)

		deps.repo.findOptionsFn = func(ctx context.Context) ([]employee.EmployeeOption, error) {
			t.Fatal("repository must not be hit on a cache hit")
			return nil, nil
		}

		options, err := deps.service.GetOptions(context.Background())

		assert.NoError(t, err)
		assert.Len(t, options, 1)
		assert.Equal(t, "Ravi Kumar", options[0].FullName)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("options load from the repository and warm the cache on a miss", func(t *testing.T) {
		deps := setupServiceTest(t)

		loaded := []employee.EmployeeOption{{ID: uuid.New().String(), EmpID: "1000002", FullName: "Asha Patel"}}
		jsonData, err := json.Marshal(loaded)
		assert.NoError(t, err)

		deps.redisMock.ExpectGet(employee.OptionsCacheKey).RedisNil()
		deps.redisMock.ExpectSet(employee.OptionsCacheKey, jsonData, time.Hour).SetVal("OK")

		deps.repo.findOptionsFn = func(ctx context.Context) ([]employee.EmployeeOption, error) {
			return loaded, nil
		}

		options, err := deps.service.GetOptions(context.Background())

		assert.NoError(t, err)
		assert.Len(t, options, 1)
		assert.Equal(t, "Asha Patel", options[0].FullName)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}
