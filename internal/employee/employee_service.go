package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/businessanalystdm/projecthrm/internal/branch"
	brancherrors "github.com/businessanalystdm/projecthrm/internal/branch/errors"
	"github.com/businessanalystdm/projecthrm/internal/catalog"
	catalogerrors "github.com/businessanalystdm/projecthrm/internal/catalog/errors"
	employeeerrors "github.com/businessanalystdm/projecthrm/internal/employee/errors"
	"github.com/businessanalystdm/projecthrm/internal/events"
	"github.com/businessanalystdm/projecthrm/internal/history"
	historyerrors "github.com/businessanalystdm/projecthrm/internal/history/errors"
	"github.com/businessanalystdm/projecthrm/internal/messaging/kafka"
	"github.com/businessanalystdm/projecthrm/internal/organization"
	"github.com/businessanalystdm/projecthrm/internal/shared/contextutil"
	"github.com/businessanalystdm/projecthrm/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"

	// empIDCounter keys the sequence row that mints employee IDs when the
	// hire request leaves the ID blank.
	empIDCounter = "employee"

	ratingDueAfterMonths = 3
)

var (
	empIDPattern  = regexp.MustCompile(`^\d{7}$`)
	mobilePattern = regexp.MustCompile(`^\+?\d{10,15}$`)
)

type Service interface {
	Hire(ctx context.Context, req HireEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Edit(ctx context.Context, id string, req EditEmployeeRequest) (EmployeeResponse, error)
	Resign(ctx context.Context, id string, req ResignEmployeeRequest) (EmployeeResponse, error)

	GetResigned(ctx context.Context) ([]EmployeeResponse, error)
	GetWithLedgerActivity(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	historyRepo history.Repository
	historySvc  history.Service
	orgService  organization.Service
	branchRepo  branch.Repository
	catalogRepo catalog.Repository
	catalogSvc  catalog.Service
	counters    counter.Repository
	outbox      kafka.OutboxRepository
	rdb         *redis.Client
	sf          *singleflight.Group
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	historyRepo history.Repository,
	historySvc history.Service,
	orgService organization.Service,
	branchRepo branch.Repository,
	catalogRepo catalog.Repository,
	catalogSvc catalog.Service,
	counters counter.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		historyRepo: historyRepo,
		historySvc:  historySvc,
		orgService:  orgService,
		branchRepo:  branchRepo,
		catalogRepo: catalogRepo,
		catalogSvc:  catalogSvc,
		counters:    counters,
		outbox:      outbox,
		rdb:         rdb,
		sf:          &singleflight.Group{},
		logger:      l,
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
		return time.Time{}, employeeerrors.ErrInvalidDate
	}
	return truncateToDay(d), nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func validateMobiles(mobile, secondMobile string) error {
	if !mobilePattern.MatchString(mobile) {
		return employeeerrors.ErrInvalidMobile
	}
	if secondMobile != "" && !mobilePattern.MatchString(secondMobile) {
		return employeeerrors.ErrInvalidMobile
	}
	return nil
}

func (s *service) Hire(ctx context.Context, req HireEmployeeRequest) (EmployeeResponse, error) {
	if err := validateMobiles(req.Mobile, req.SecondMobile); err != nil {
		return EmployeeResponse{}, err
	}
	joiningDate, err := parseDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	dob, err := parseOptionalDate(req.DOB)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empID, err := s.resolveEmpID(ctx, qtx, req.EmpID)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.orgService.ValidateChain(ctx, req.CompanyID,
		req.DepartmentID, req.SubDepartmentID, req.CategoryID, req.DesignationID); err != nil {
		return EmployeeResponse{}, err
	}

	if _, err := s.branchRepo.WithTx(tx).FindBranchByID(ctx, req.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, brancherrors.ErrBranchNotFound
		}
		return EmployeeResponse{}, err
	}

	var qualificationID *uuid.UUID
	if req.QualificationID != "" {
		q, err := s.catalogRepo.WithTx(tx).FindQualificationByID(ctx, req.QualificationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return EmployeeResponse{}, catalogerrors.ErrItemNotFound
			}
			return EmployeeResponse{}, err
		}
		qualificationID = &q.ID
	}

	skills, err := s.resolveSkills(ctx, tx, req.SkillNames)
	if err != nil {
		return EmployeeResponse{}, err
	}
	assets, err := s.resolveAssets(ctx, tx, req.AssetIDs)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e := &Employee{
		ID:    uuid.New(),
		EmpID: empID,

		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DOB:          dob,
		Gender:       req.Gender,
		Address:      req.Address,
		Mobile:       req.Mobile,
		SecondMobile: req.SecondMobile,
		Email:        req.Email,
		BloodGroup:   req.BloodGroup,
		AadharNumber: req.AadharNumber,

		QualificationID: qualificationID,
		CompanyID:       uuid.MustParse(req.CompanyID),
		BranchID:        uuid.MustParse(req.BranchID),
		DepartmentID:    uuid.MustParse(req.DepartmentID),
		SubDepartmentID: uuid.MustParse(req.SubDepartmentID),
		CategoryID:      uuid.MustParse(req.CategoryID),
		DesignationID:   uuid.MustParse(req.DesignationID),

		Salary:        req.Salary,
		JoiningDate:   joiningDate,
		WorkStartTime: req.WorkStartTime,
		WorkEndTime:   req.WorkEndTime,

		PhotoPath:    req.PhotoPath,
		DocumentPath: req.DocumentPath,

		Experiences: toExperiences(req.Experiences),
		Skills:      skills,
		Assets:      assets,

		Status:  StatusActive,
		Remarks: req.Remarks,
	}

	if err := qtx.Create(ctx, e); err != nil {
		return EmployeeResponse{}, mapEmployeeError(err)
	}

	if err := s.historySvc.SeedLedgers(ctx, s.historyRepo.WithTx(tx), currentOf(e)); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.emitLifecycleEvent(ctx, tx, events.TypeEmployeeHired, e, joiningDate); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("employee hired",
		zap.String("employee_id", e.ID.String()),
		zap.String("emp_id", e.EmpID),
		zap.String("joining_date", req.JoiningDate),
	)

	return toResponse(e), nil
}

// resolveEmpID validates a caller-supplied employee ID for format and
// uniqueness, or mints the next one from the sequence counter.
func (s *service) resolveEmpID(ctx context.Context, qtx Repository, empID string) (string, error) {
	if empID != "" {
		if !empIDPattern.MatchString(empID) {
			return "", employeeerrors.ErrInvalidEmpID
		}
		_, err := qtx.FindByEmpID(ctx, empID)
		if err == nil {
			return "", employeeerrors.ErrEmpIDTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		return empID, nil
	}

	next, err := s.counters.GetNextValue(ctx, empIDCounter)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%07d", next), nil
}

func (s *service) resolveSkills(ctx context.Context, tx *sql.Tx, names []string) ([]catalog.Skill, error) {
	if len(names) == 0 {
		return nil, nil
	}
	qtx := s.catalogRepo.WithTx(tx)
	skills := make([]catalog.Skill, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		skill, err := s.catalogSvc.GetOrCreateSkill(ctx, qtx, name)
		if err != nil {
			return nil, err
		}
		if seen[skill.ID.String()] {
			continue
		}
		seen[skill.ID.String()] = true
		skills = append(skills, *skill)
	}
	return skills, nil
}

func (s *service) resolveAssets(ctx context.Context, tx *sql.Tx, ids []string) ([]catalog.Asset, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	assets, err := s.catalogRepo.WithTx(tx).FindAssetsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(assets) != len(ids) {
		return nil, catalogerrors.ErrItemNotFound
	}
	return assets, nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapEmployeeError(err)
	}
	return toResponse(e), nil
}

// Edit saves profile changes and routes any branch, salary, or role change
// through the corresponding history ledger so the transition rules stay in
// force no matter which door the change comes in.
func (s *service) Edit(ctx context.Context, id string, req EditEmployeeRequest) (EmployeeResponse, error) {
	if err := validateMobiles(req.Mobile, req.SecondMobile); err != nil {
		return EmployeeResponse{}, err
	}
	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	dob, err := parseOptionalDate(req.DOB)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapEmployeeError(err)
	}

	branchID := uuid.MustParse(req.BranchID)
	dept := uuid.MustParse(req.DepartmentID)
	subDept := uuid.MustParse(req.SubDepartmentID)
	cat := uuid.MustParse(req.CategoryID)
	desig := uuid.MustParse(req.DesignationID)

	branchChanged := branchID != e.BranchID
	salaryChanged := req.Salary != e.Salary
	roleChanged := dept != e.DepartmentID || subDept != e.SubDepartmentID ||
		cat != e.CategoryID || desig != e.DesignationID

	cur := currentOf(e)
	hqtx := s.historyRepo.WithTx(tx)

	if branchChanged {
		if effectiveDate.Before(today()) {
			return EmployeeResponse{}, historyerrors.ErrBackdatedTransfer
		}
		if _, err := s.branchRepo.WithTx(tx).FindBranchByID(ctx, req.BranchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return EmployeeResponse{}, brancherrors.ErrBranchNotFound
			}
			return EmployeeResponse{}, err
		}
		if err := s.historySvc.ApplyTransfer(ctx, hqtx, cur, branchID, effectiveDate); err != nil {
			return EmployeeResponse{}, err
		}
		e.BranchID = cur.BranchID
		if err := s.emitLifecycleEvent(ctx, tx, events.TypeBranchTransferred, e, effectiveDate); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if salaryChanged {
		if err := s.historySvc.ApplyIncrement(ctx, hqtx, cur, req.Salary, effectiveDate); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if roleChanged {
		if effectiveDate.After(today()) {
			return EmployeeResponse{}, historyerrors.ErrFutureStartDate
		}
		if effectiveDate.Before(truncateToDay(e.JoiningDate)) {
			return EmployeeResponse{}, historyerrors.ErrStartBeforeJoining
		}
		// A role change never crosses companies, so the chain is checked
		// against the employee's own company.
		if err := s.orgService.ValidateChain(ctx, e.CompanyID.String(),
			req.DepartmentID, req.SubDepartmentID, req.CategoryID, req.DesignationID); err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.historySvc.ApplyPromotion(ctx, hqtx, cur, dept, subDept, cat, desig, effectiveDate); err != nil {
			return EmployeeResponse{}, err
		}
		e.DesignationID = cur.DesignationID
		if err := s.emitLifecycleEvent(ctx, tx, events.TypeEmployeePromoted, e, effectiveDate); err != nil {
			return EmployeeResponse{}, err
		}
	}

	var qualificationID *uuid.UUID
	if req.QualificationID != "" {
		q, err := s.catalogRepo.WithTx(tx).FindQualificationByID(ctx, req.QualificationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return EmployeeResponse{}, catalogerrors.ErrItemNotFound
			}
			return EmployeeResponse{}, err
		}
		qualificationID = &q.ID
	}

	e.FirstName = req.FirstName
	e.LastName = req.LastName
	e.DOB = dob
	e.Gender = req.Gender
	e.Address = req.Address
	e.Mobile = req.Mobile
	e.SecondMobile = req.SecondMobile
	e.Email = req.Email
	e.BloodGroup = req.BloodGroup
	e.AadharNumber = req.AadharNumber
	e.QualificationID = qualificationID
	e.WorkStartTime = req.WorkStartTime
	e.WorkEndTime = req.WorkEndTime
	e.PhotoPath = req.PhotoPath
	e.DocumentPath = req.DocumentPath
	e.Experiences = toExperiences(req.Experiences)
	e.Remarks = req.Remarks

	if req.Rating != "" && req.Rating != e.Rating {
		now := today()
		e.Rating = req.Rating
		e.LastRatingDate = &now
	}

	// cur reflects whatever ledger transitions were applied above.
	e.BranchID = cur.BranchID
	e.Salary = cur.Salary
	e.DepartmentID = cur.DepartmentID
	e.SubDepartmentID = cur.SubDepartmentID
	e.CategoryID = cur.CategoryID
	e.DesignationID = cur.DesignationID

	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, err
	}

	skills, err := s.resolveSkills(ctx, tx, req.SkillNames)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := qtx.ReplaceSkills(ctx, e, skills); err != nil {
		return EmployeeResponse{}, err
	}

	assets, err := s.resolveAssets(ctx, tx, req.AssetIDs)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := qtx.ReplaceAssets(ctx, e, assets); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("employee updated",
		zap.String("employee_id", e.ID.String()),
		zap.Bool("branch_changed", branchChanged),
		zap.Bool("salary_changed", salaryChanged),
		zap.Bool("role_changed", roleChanged),
	)

	e.Skills = skills
	e.Assets = assets
	return toResponse(e), nil
}

func (s *service) Resign(ctx context.Context, id string, req ResignEmployeeRequest) (EmployeeResponse, error) {
	resigningDate, err := parseDate(req.ResigningDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if !resigningDate.Before(today()) {
		return EmployeeResponse{}, employeeerrors.ErrResignDateNotPast
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapEmployeeError(err)
	}
	if e.Status == StatusInactive {
		return EmployeeResponse{}, employeeerrors.ErrAlreadyResigned
	}

	e.Status = StatusInactive
	e.ResigningDate = &resigningDate
	e.ResignReason = req.Reason

	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, err
	}

	// Company property goes back to the pool on exit.
	if err := qtx.ClearAssets(ctx, e); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.emitLifecycleEvent(ctx, tx, events.TypeEmployeeResigned, e, resigningDate); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("employee resigned",
		zap.String("employee_id", e.ID.String()),
		zap.String("resigning_date", req.ResigningDate),
	)

	e.Assets = nil
	return toResponse(e), nil
}

func (s *service) GetResigned(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindResigned(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(employees), nil
}

func (s *service) GetWithLedgerActivity(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindWithLedgerActivity(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(employees), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var options []EmployeeOption
			if json.Unmarshal([]byte(cached), &options) == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		options, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if jsonData, err := json.Marshal(options); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 1*time.Hour)
			}
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeOption), nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("invalidate options cache failed", zap.Error(err))
	}
}

func (s *service) emitLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType string, e *Employee, effectiveDate time.Time) error {
	payload, err := json.Marshal(events.EmployeeLifecycleEvent{
		EventType:     eventType,
		RequestID:     contextutil.GetRequestID(ctx),
		EmployeeID:    e.ID.String(),
		EmpID:         e.EmpID,
		BranchID:      e.BranchID.String(),
		DesignationID: e.DesignationID.String(),
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
		AggregateID:   e.ID.String(),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func currentOf(e *Employee) *history.EmployeeCurrent {
	return &history.EmployeeCurrent{
		ID:              e.ID,
		EmpID:           e.EmpID,
		CompanyID:       e.CompanyID,
		BranchID:        e.BranchID,
		DepartmentID:    e.DepartmentID,
		SubDepartmentID: e.SubDepartmentID,
		CategoryID:      e.CategoryID,
		DesignationID:   e.DesignationID,
		Salary:          e.Salary,
		JoiningDate:     e.JoiningDate,
		Status:          e.Status,
	}
}

func toExperiences(in []ExperienceInput) Experiences {
	out := make(Experiences, len(in))
	for i, exp := range in {
		out[i] = Experience{Title: exp.Title, Company: exp.Company, Years: exp.Years}
	}
	return out
}

func toResponse(e *Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:    e.ID.String(),
		EmpID: e.EmpID,

		FirstName:    e.FirstName,
		LastName:     e.LastName,
		FullName:     fullName(e),
		Gender:       e.Gender,
		Address:      e.Address,
		Mobile:       e.Mobile,
		SecondMobile: e.SecondMobile,
		Email:        e.Email,
		BloodGroup:   e.BloodGroup,
		AadharNumber: e.AadharNumber,

		CompanyID:       e.CompanyID.String(),
		BranchID:        e.BranchID.String(),
		DepartmentID:    e.DepartmentID.String(),
		SubDepartmentID: e.SubDepartmentID.String(),
		CategoryID:      e.CategoryID.String(),
		DesignationID:   e.DesignationID.String(),

		Salary:        e.Salary,
		JoiningDate:   e.JoiningDate.Format(dateLayout),
		WorkStartTime: e.WorkStartTime,
		WorkEndTime:   e.WorkEndTime,

		PhotoPath:    e.PhotoPath,
		DocumentPath: e.DocumentPath,

		Experiences: toExperienceInputs(e.Experiences),
		Skills:      skillNames(e.Skills),
		AssetIDs:    assetIDs(e.Assets),

		Status:       e.Status,
		ResignReason: e.ResignReason,

		Rating:  e.Rating,
		Remarks: e.Remarks,

		WorkDurationDays: workDurationDays(e),
		IsRatingDue:      isRatingDue(e),
	}

	if e.DOB != nil {
		resp.DOB = e.DOB.Format(dateLayout)
	}
	if e.QualificationID != nil {
		resp.QualificationID = e.QualificationID.String()
	}
	if e.ResigningDate != nil {
		resp.ResigningDate = e.ResigningDate.Format(dateLayout)
	}
	if e.LastRatingDate != nil {
		resp.LastRatingDate = e.LastRatingDate.Format(dateLayout)
	}

	return resp
}

func toResponses(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = toResponse(&employees[i])
	}
	return res
}

func fullName(e *Employee) string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// workDurationDays counts from joining to the resigning date, or to today
// while still on the payroll.
func workDurationDays(e *Employee) int {
	end := today()
	if e.ResigningDate != nil {
		end = truncateToDay(*e.ResigningDate)
	}
	days := int(end.Sub(truncateToDay(e.JoiningDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// isRatingDue flags active employees whose last rating (or joining, when
// never rated) lies more than the review window in the past.
func isRatingDue(e *Employee) bool {
	if e.Status != StatusActive {
		return false
	}
	last := truncateToDay(e.JoiningDate)
	if e.LastRatingDate != nil {
		last = truncateToDay(*e.LastRatingDate)
	}
	return today().After(last.AddDate(0, ratingDueAfterMonths, 0))
}

func toExperienceInputs(in Experiences) []ExperienceInput {
	out := make([]ExperienceInput, len(in))
	for i, exp := range in {
		out[i] = ExperienceInput{Title: exp.Title, Company: exp.Company, Years: exp.Years}
	}
	return out
}

func skillNames(skills []catalog.Skill) []string {
	names := make([]string, len(skills))
	for i, sk := range skills {
		names[i] = sk.Name
	}
	return names
}

func assetIDs(assets []catalog.Asset) []string {
	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.ID.String()
	}
	return ids
}
