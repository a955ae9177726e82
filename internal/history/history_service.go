package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/businessanalystdm/projecthrm/internal/branch"
	"github.com/businessanalystdm/projecthrm/internal/events"
	historyerrors "github.com/businessanalystdm/projecthrm/internal/history/errors"
	"github.com/businessanalystdm/projecthrm/internal/messaging/kafka"
	"github.com/businessanalystdm/projecthrm/internal/organization"
	"github.com/businessanalystdm/projecthrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	TransferBranch(ctx context.Context, req TransferBranchRequest) (HistoryEntryResponse, error)
	IncrementSalary(ctx context.Context, req IncrementSalaryRequest) (HistoryEntryResponse, error)
	Promote(ctx context.Context, req PromoteRequest) (HistoryEntryResponse, error)
	GetHistory(ctx context.Context, employeeID string, kind Kind) ([]HistoryEntryResponse, error)

	// Tx-scoped transitions for callers that orchestrate their own
	// transaction (the employee hire/edit paths). They mutate emp's
	// current fields to reflect the applied transition.
	SeedLedgers(ctx context.Context, qtx Repository, emp *EmployeeCurrent) error
	ApplyTransfer(ctx context.Context, qtx Repository, emp *EmployeeCurrent, branchID uuid.UUID, startDate time.Time) error
	ApplyIncrement(ctx context.Context, qtx Repository, emp *EmployeeCurrent, salary float64, startDate time.Time) error
	ApplyPromotion(ctx context.Context, qtx Repository, emp *EmployeeCurrent, dept, subDept, cat, desig uuid.UUID, startDate time.Time) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	branchRepo branch.Repository
	orgService organization.Service
	outbox     kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	branchRepo branch.Repository,
	orgService organization.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		branchRepo: branchRepo,
		orgService: orgService,
		outbox:     outbox,
		logger:     l,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return truncateToDay(time.Now())
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, historyerrors.ErrInvalidStartDate
	}
	return d, nil
}

func (s *service) TransferBranch(ctx context.Context, req TransferBranchRequest) (HistoryEntryResponse, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return HistoryEntryResponse{}, err
	}
	if startDate.Before(today()) {
		return HistoryEntryResponse{}, historyerrors.ErrBackdatedTransfer
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HistoryEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.GetEmployeeCurrent(ctx, req.EmployeeID)
	if err != nil {
		return HistoryEntryResponse{}, mapEmployeeError(err)
	}

	if _, err := s.branchRepo.WithTx(tx).FindBranchByID(ctx, req.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HistoryEntryResponse{}, historyerrors.ErrBranchNotFound
		}
		return HistoryEntryResponse{}, err
	}

	branchID := uuid.MustParse(req.BranchID)
	if err := s.ApplyTransfer(ctx, qtx, emp, branchID, startDate); err != nil {
		return HistoryEntryResponse{}, err
	}

	if err := s.emitLifecycleEvent(ctx, tx, events.TypeBranchTransferred, emp, req.BranchID, "", startDate); err != nil {
		return HistoryEntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return HistoryEntryResponse{}, err
	}

	s.logger.Info("branch transferred",
		zap.String("employee_id", emp.ID.String()),
		zap.String("branch_id", req.BranchID),
		zap.String("start_date", req.StartDate),
	)

	return HistoryEntryResponse{
		EmployeeID: emp.ID.String(),
		Kind:       string(KindBranch),
		StartDate:  startDate.Format(dateLayout),
		Status:     StatusActive,
		BranchID:   req.BranchID,
	}, nil
}

func (s *service) IncrementSalary(ctx context.Context, req IncrementSalaryRequest) (HistoryEntryResponse, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return HistoryEntryResponse{}, err
	}
	if req.Salary <= 0.01 {
		return HistoryEntryResponse{}, historyerrors.ErrInvalidSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HistoryEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.GetEmployeeCurrent(ctx, req.EmployeeID)
	if err != nil {
		return HistoryEntryResponse{}, mapEmployeeError(err)
	}

	if err := s.ApplyIncrement(ctx, qtx, emp, req.Salary, startDate); err != nil {
		return HistoryEntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return HistoryEntryResponse{}, err
	}

	s.logger.Info("salary incremented",
		zap.String("employee_id", emp.ID.String()),
		zap.Float64("salary", req.Salary),
		zap.String("start_date", req.StartDate),
	)

	return HistoryEntryResponse{
		EmployeeID: emp.ID.String(),
		Kind:       string(KindSalary),
		StartDate:  startDate.Format(dateLayout),
		Status:     StatusActive,
		Salary:     req.Salary,
	}, nil
}

func (s *service) Promote(ctx context.Context, req PromoteRequest) (HistoryEntryResponse, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return HistoryEntryResponse{}, err
	}
	if startDate.After(today()) {
		return HistoryEntryResponse{}, historyerrors.ErrFutureStartDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HistoryEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.GetEmployeeCurrent(ctx, req.EmployeeID)
	if err != nil {
		return HistoryEntryResponse{}, mapEmployeeError(err)
	}

	if startDate.Before(truncateToDay(emp.JoiningDate)) {
		return HistoryEntryResponse{}, historyerrors.ErrStartBeforeJoining
	}

	// Promotions never move an employee between companies, so the company
	// link is not part of the chain check.
	if err := s.orgService.ValidateChain(ctx, "",
		req.DepartmentID, req.SubDepartmentID, req.CategoryID, req.DesignationID); err != nil {
		return HistoryEntryResponse{}, err
	}

	dept := uuid.MustParse(req.DepartmentID)
	subDept := uuid.MustParse(req.SubDepartmentID)
	cat := uuid.MustParse(req.CategoryID)
	desig := uuid.MustParse(req.DesignationID)

	if err := s.ApplyPromotion(ctx, qtx, emp, dept, subDept, cat, desig, startDate); err != nil {
		return HistoryEntryResponse{}, err
	}

	if err := s.emitLifecycleEvent(ctx, tx, events.TypeEmployeePromoted, emp, "", req.DesignationID, startDate); err != nil {
		return HistoryEntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return HistoryEntryResponse{}, err
	}

	s.logger.Info("employee promoted",
		zap.String("employee_id", emp.ID.String()),
		zap.String("designation_id", req.DesignationID),
		zap.String("start_date", req.StartDate),
	)

	return HistoryEntryResponse{
		EmployeeID:      emp.ID.String(),
		Kind:            string(KindPromotion),
		StartDate:       startDate.Format(dateLayout),
		Status:          StatusActive,
		DepartmentID:    req.DepartmentID,
		SubDepartmentID: req.SubDepartmentID,
		CategoryID:      req.CategoryID,
		DesignationID:   req.DesignationID,
	}, nil
}

func (s *service) GetHistory(ctx context.Context, employeeID string, kind Kind) ([]HistoryEntryResponse, error) {
	if _, err := s.repo.GetEmployeeCurrent(ctx, employeeID); err != nil {
		return nil, mapEmployeeError(err)
	}

	switch kind {
	case KindBranch:
		entries, err := s.repo.ListBranchHistory(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		res := make([]HistoryEntryResponse, len(entries))
		for i, e := range entries {
			res[i] = HistoryEntryResponse{
				ID:         e.ID.String(),
				EmployeeID: e.EmployeeID.String(),
				Kind:       string(KindBranch),
				StartDate:  e.StartDate.Format(dateLayout),
				EndDate:    formatEndDate(e.EndDate),
				Status:     e.Status,
				BranchID:   e.BranchID.String(),
			}
		}
		return res, nil
	case KindSalary:
		entries, err := s.repo.ListSalaryHistory(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		res := make([]HistoryEntryResponse, len(entries))
		for i, e := range entries {
			res[i] = HistoryEntryResponse{
				ID:         e.ID.String(),
				EmployeeID: e.EmployeeID.String(),
				Kind:       string(KindSalary),
				StartDate:  e.StartDate.Format(dateLayout),
				EndDate:    formatEndDate(e.EndDate),
				Status:     e.Status,
				Salary:     e.Salary,
			}
		}
		return res, nil
	case KindPromotion:
		entries, err := s.repo.ListPromotionHistory(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		res := make([]HistoryEntryResponse, len(entries))
		for i, e := range entries {
			res[i] = HistoryEntryResponse{
				ID:              e.ID.String(),
				EmployeeID:      e.EmployeeID.String(),
				Kind:            string(KindPromotion),
				StartDate:       e.StartDate.Format(dateLayout),
				EndDate:         formatEndDate(e.EndDate),
				Status:          e.Status,
				DepartmentID:    e.DepartmentID.String(),
				SubDepartmentID: e.SubDepartmentID.String(),
				CategoryID:      e.CategoryID.String(),
				DesignationID:   e.DesignationID.String(),
			}
		}
		return res, nil
	}
	return nil, historyerrors.ErrUnknownKind
}

// SeedLedgers opens the initial entry in each ledger at the joining date.
// Re-entrant: a ledger that already has an open entry is skipped, so calling
// it twice for the same employee is harmless.
func (s *service) SeedLedgers(ctx context.Context, qtx Repository, emp *EmployeeCurrent) error {
	joining := truncateToDay(emp.JoiningDate)

	hasBranch, err := qtx.HasOpenBranchEntry(ctx, emp.ID.String())
	if err != nil {
		return err
	}
	if !hasBranch {
		if err := qtx.CreateBranchEntry(ctx, &BranchHistory{
			ID:         uuid.New(),
			EmployeeID: emp.ID,
			BranchID:   emp.BranchID,
			StartDate:  joining,
			Status:     StatusActive,
		}); err != nil {
			return err
		}
	}

	hasSalary, err := qtx.HasOpenSalaryEntry(ctx, emp.ID.String())
	if err != nil {
		return err
	}
	if !hasSalary {
		if err := qtx.CreateSalaryEntry(ctx, &SalaryHistory{
			ID:         uuid.New(),
			EmployeeID: emp.ID,
			Salary:     emp.Salary,
			StartDate:  joining,
			Status:     StatusActive,
		}); err != nil {
			return err
		}
	}

	hasPromotion, err := qtx.HasOpenPromotionEntry(ctx, emp.ID.String())
	if err != nil {
		return err
	}
	if !hasPromotion {
		if err := qtx.CreatePromotionEntry(ctx, &PromotionHistory{
			ID:              uuid.New(),
			EmployeeID:      emp.ID,
			DepartmentID:    emp.DepartmentID,
			SubDepartmentID: emp.SubDepartmentID,
			CategoryID:      emp.CategoryID,
			DesignationID:   emp.DesignationID,
			StartDate:       joining,
			Status:          StatusActive,
		}); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) ApplyTransfer(ctx context.Context, qtx Repository, emp *EmployeeCurrent, branchID uuid.UUID, startDate time.Time) error {
	if emp.BranchID == branchID {
		return historyerrors.ErrSameBranch
	}
	startDate = truncateToDay(startDate)

	open, err := qtx.FindOpenBranchEntryForUpdate(ctx, emp.ID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if open != nil {
		if err := qtx.CloseBranchEntry(ctx, open.ID, closingDate(startDate, open.StartDate)); err != nil {
			return err
		}
	}

	if err := qtx.CreateBranchEntry(ctx, &BranchHistory{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		BranchID:   branchID,
		StartDate:  startDate,
		Status:     StatusActive,
	}); err != nil {
		return err
	}

	if err := qtx.UpdateEmployeeBranch(ctx, emp.ID.String(), branchID); err != nil {
		return err
	}

	emp.BranchID = branchID
	return nil
}

func (s *service) ApplyIncrement(ctx context.Context, qtx Repository, emp *EmployeeCurrent, salary float64, startDate time.Time) error {
	if salary <= 0.01 {
		return historyerrors.ErrInvalidSalary
	}
	if salary <= emp.Salary {
		return historyerrors.ErrSalaryNotIncreased
	}
	startDate = truncateToDay(startDate)

	open, err := qtx.FindOpenSalaryEntryForUpdate(ctx, emp.ID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if open != nil {
		if err := qtx.CloseSalaryEntry(ctx, open.ID, closingDate(startDate, open.StartDate)); err != nil {
			return err
		}
	}

	if err := qtx.CreateSalaryEntry(ctx, &SalaryHistory{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		Salary:     salary,
		StartDate:  startDate,
		Status:     StatusActive,
	}); err != nil {
		return err
	}

	if err := qtx.UpdateEmployeeSalary(ctx, emp.ID.String(), salary); err != nil {
		return err
	}

	emp.Salary = salary
	return nil
}

func (s *service) ApplyPromotion(ctx context.Context, qtx Repository, emp *EmployeeCurrent, dept, subDept, cat, desig uuid.UUID, startDate time.Time) error {
	if emp.DepartmentID == dept && emp.SubDepartmentID == subDept &&
		emp.CategoryID == cat && emp.DesignationID == desig {
		return historyerrors.ErrNoOpPromotion
	}
	startDate = truncateToDay(startDate)

	openEntries, err := qtx.FindOpenPromotionEntriesForUpdate(ctx, emp.ID.String())
	if err != nil {
		return err
	}
	for _, open := range openEntries {
		if err := qtx.ClosePromotionEntry(ctx, open.ID, promotionClosingDate(startDate, open.StartDate)); err != nil {
			return err
		}
	}

	if err := qtx.CreatePromotionEntry(ctx, &PromotionHistory{
		ID:              uuid.New(),
		EmployeeID:      emp.ID,
		DepartmentID:    dept,
		SubDepartmentID: subDept,
		CategoryID:      cat,
		DesignationID:   desig,
		StartDate:       startDate,
		Status:          StatusActive,
	}); err != nil {
		return err
	}

	if err := qtx.UpdateEmployeePromotion(ctx, emp.ID.String(), dept, subDept, cat, desig); err != nil {
		return err
	}

	emp.DepartmentID = dept
	emp.SubDepartmentID = subDept
	emp.CategoryID = cat
	emp.DesignationID = desig
	return nil
}

// closingDate ends a branch or salary entry at the incoming start date.
// When the new start does not fall strictly after the open entry's start
// (a same-day correction), the entry closes at its own start so the interval
// never runs negative.
func closingDate(newStart, openStart time.Time) time.Time {
	if !newStart.After(openStart) {
		return openStart
	}
	return newStart
}

// promotionClosingDate differs: the outgoing role ends the day before the
// new one begins, with the same same-day guard.
func promotionClosingDate(newStart, openStart time.Time) time.Time {
	if !newStart.After(openStart) {
		return openStart
	}
	return newStart.AddDate(0, 0, -1)
}

func (s *service) emitLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType string, emp *EmployeeCurrent, branchID, designationID string, effectiveDate time.Time) error {
	payload, err := json.Marshal(events.EmployeeLifecycleEvent{
		EventType:     eventType,
		RequestID:     contextutil.GetRequestID(ctx),
		EmployeeID:    emp.ID.String(),
		EmpID:         emp.EmpID,
		BranchID:      branchID,
		DesignationID: designationID,
		EffectiveDate: effectiveDate.Format(dateLayout),
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   emp.ID.String(),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func formatEndDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return historyerrors.ErrEmployeeNotFound
	}
	return err
}
