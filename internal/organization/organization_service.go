package organization

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	organizationerrors "github.com/businessanalystdm/projecthrm/internal/organization/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const childrenCacheKeyPrefix = "org:children:"

func childrenCacheKey(level, parentID string) string {
	return childrenCacheKeyPrefix + level + ":" + parentID
}

type Service interface {
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (NodeResponse, error)
	GetCompanies(ctx context.Context) ([]NodeResponse, error)
	UpdateCompany(ctx context.Context, id string, req UpdateCompanyRequest) (NodeResponse, error)
	DeleteCompany(ctx context.Context, id string) error

	CreateDepartment(ctx context.Context, req CreateNodeRequest) (NodeResponse, error)
	GetDepartmentsByCompany(ctx context.Context, companyID string) ([]NodeResponse, error)
	UpdateDepartment(ctx context.Context, id string, req UpdateNodeRequest) (NodeResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateSubDepartment(ctx context.Context, req CreateNodeRequest) (NodeResponse, error)
	GetSubDepartmentsByDepartment(ctx context.Context, departmentID string) ([]NodeResponse, error)
	UpdateSubDepartment(ctx context.Context, id string, req UpdateNodeRequest) (NodeResponse, error)
	DeleteSubDepartment(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, req CreateNodeRequest) (NodeResponse, error)
	GetCategoriesBySubDepartment(ctx context.Context, subDepartmentID string) ([]NodeResponse, error)
	UpdateCategory(ctx context.Context, id string, req UpdateNodeRequest) (NodeResponse, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateDesignation(ctx context.Context, req CreateDesignationRequest) (NodeResponse, error)
	GetDesignationsByCategory(ctx context.Context, categoryID string) ([]NodeResponse, error)
	UpdateDesignation(ctx context.Context, id string, req UpdateDesignationRequest) (NodeResponse, error)
	DeleteDesignation(ctx context.Context, id string) error

	// ValidateChain confirms every parent link in a bottom-to-top tuple.
	// An empty companyID skips the company link (promotions never move an
	// employee between companies).
	ValidateChain(ctx context.Context, companyID, departmentID, subDepartmentID, categoryID, designationID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// --- Company ---

func (s *service) CreateCompany(ctx context.Context, req CreateCompanyRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	company := &Company{
		ID:     uuid.New(),
		Name:   req.Name,
		Status: status,
	}

	if err := qtx.CreateCompany(ctx, company); err != nil {
		s.logger.Error("create company failed", zap.Error(err))
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	s.logger.Info("company created", zap.String("company_id", company.ID.String()))
	return companyToResponse(*company), nil
}

func (s *service) GetCompanies(ctx context.Context) ([]NodeResponse, error) {
	companies, err := s.repo.FindAllCompanies(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]NodeResponse, len(companies))
	for i, c := range companies {
		res[i] = companyToResponse(c)
	}
	return res, nil
}

func (s *service) UpdateCompany(ctx context.Context, id string, req UpdateCompanyRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	company, err := qtx.FindCompanyByID(ctx, id)
	if err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	company.Name = req.Name
	company.Status = req.Status

	if err := qtx.UpdateCompany(ctx, company); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	return companyToResponse(*company), nil
}

func (s *service) DeleteCompany(ctx context.Context, id string) error {
	return s.deleteNode(ctx, id, "", "",
		s.repo.CompanyHasDependents,
		func(ctx context.Context, qtx Repository) error { return qtx.DeleteCompany(ctx, id) },
	)
}

// --- Department ---

func (s *service) CreateDepartment(ctx context.Context, req CreateNodeRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindCompanyByID(ctx, req.ParentID); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	dept := &Department{
		ID:        uuid.New(),
		Name:      req.Name,
		CompanyID: uuid.MustParse(req.ParentID),
		Status:    defaultStatus(req.Status),
	}

	if err := qtx.CreateDepartment(ctx, dept); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	s.invalidateChildren(ctx, "departments", req.ParentID)
	return departmentToResponse(*dept), nil
}

func (s *service) GetDepartmentsByCompany(ctx context.Context, companyID string) ([]NodeResponse, error) {
	return s.cachedChildren(ctx, "departments", companyID, func() ([]NodeResponse, error) {
		depts, err := s.repo.FindDepartmentsByCompany(ctx, companyID, true)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		res := make([]NodeResponse, len(depts))
		for i, d := range depts {
			res[i] = departmentToResponse(d)
		}
		return res, nil
	})
}

func (s *service) UpdateDepartment(ctx context.Context, id string, req UpdateNodeRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindDepartmentByID(ctx, id)
	if err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}
	if _, err := qtx.FindCompanyByID(ctx, req.ParentID); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	oldParent := dept.CompanyID.String()
	dept.Name = req.Name
	dept.CompanyID = uuid.MustParse(req.ParentID)
	dept.Status = req.Status

	if err := qtx.UpdateDepartment(ctx, dept); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	s.invalidateChildren(ctx, "departments", oldParent, req.ParentID)
	return departmentToResponse(*dept), nil
}

func (s *service) DeleteDepartment(ctx context.Context, id string) error {
	dept, err := s.repo.FindDepartmentByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	return s.deleteNode(ctx, id, "departments", dept.CompanyID.String(),
		s.repo.DepartmentHasDependents,
		func(ctx context.Context, qtx Repository) error { return qtx.DeleteDepartment(ctx, id) },
	)
}

// --- SubDepartment ---

func (s *service) CreateSubDepartment(ctx context.Context, req CreateNodeRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindDepartmentByID(ctx, req.ParentID); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	sub := &SubDepartment{
		ID:           uuid.New(),
		Name:         req.Name,
		DepartmentID: uuid.MustParse(req.ParentID),
		Status:       defaultStatus(req.Status),
	}

	if err := qtx.CreateSubDepartment(ctx, sub); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	s.invalidateChildren(ctx, "sub_departments", req.ParentID)
	return subDepartmentToResponse(*sub), nil
}

func (s *service) GetSubDepartmentsByDepartment(ctx context.Context, departmentID string) ([]NodeResponse, error) {
	return s.cachedChildren(ctx, "sub_departments", departmentID, func() ([]NodeResponse, error) {
		subs, err := s.repo.FindSubDepartmentsByDepartment(ctx, departmentID, true)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		res := make([]NodeResponse, len(subs))
		for i, sd := range subs {
			res[i] = subDepartmentToResponse(sd)
		}
		return res, nil
	})
}

func (s *service) UpdateSubDepartment(ctx context.Context, id string, req UpdateNodeRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sub, err := qtx.FindSubDepartmentByID(ctx, id)
	if err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}
	if _, err := qtx.FindDepartmentByID(ctx, req.ParentID); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	oldParent := sub.DepartmentID.String()
	sub.Name = req.Name
	sub.DepartmentID = uuid.MustParse(req.ParentID)
	sub.Status = req.Status

	if err := qtx.UpdateSubDepartment(ctx, sub); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	s.invalidateChildren(ctx, "sub_departments", oldParent, req.ParentID)
	return subDepartmentToResponse(*sub), nil
}

func (s *service) DeleteSubDepartment(ctx context.Context, id string) error {
	sub, err := s.repo.FindSubDepartmentByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	return s.deleteNode(ctx, id, "sub_departments", sub.DepartmentID.String(),
		s.repo.SubDepartmentHasDependents,
		func(ctx context.Context, qtx Repository) error { return qtx.DeleteSubDepartment(ctx, id) },
	)
}

// --- Category ---

func (s *service) CreateCategory(ctx context.Context, req CreateNodeRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindSubDepartmentByID(ctx, req.ParentID); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	cat := &Category{
		ID:              uuid.New(),
		Name:            req.Name,
		SubDepartmentID: uuid.MustParse(req.ParentID),
		Status:          defaultStatus(req.Status),
	}

	if err := qtx.CreateCategory(ctx, cat); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	s.invalidateChildren(ctx, "categories", req.ParentID)
	return categoryToResponse(*cat), nil
}

func (s *service) GetCategoriesBySubDepartment(ctx context.Context, subDepartmentID string) ([]NodeResponse, error) {
	return s.cachedChildren(ctx, "categories", subDepartmentID, func() ([]NodeResponse, error) {
		cats, err := s.repo.FindCategoriesBySubDepartment(ctx, subDepartmentID, true)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		res := make([]NodeResponse, len(cats))
		for i, c := range cats {
			res[i] = categoryToResponse(c)
		}
		return res, nil
	})
}

func (s *service) UpdateCategory(ctx context.Context, id string, req UpdateNodeRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cat, err := qtx.FindCategoryByID(ctx, id)
	if err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}
	if _, err := qtx.FindSubDepartmentByID(ctx, req.ParentID); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	oldParent := cat.SubDepartmentID.String()
	cat.Name = req.Name
	cat.SubDepartmentID = uuid.MustParse(req.ParentID)
	cat.Status = req.Status

	if err := qtx.UpdateCategory(ctx, cat); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	s.invalidateChildren(ctx, "categories", oldParent, req.ParentID)
	return categoryToResponse(*cat), nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	cat, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	return s.deleteNode(ctx, id, "categories", cat.SubDepartmentID.String(),
		s.repo.CategoryHasDependents,
		func(ctx context.Context, qtx Repository) error { return qtx.DeleteCategory(ctx, id) },
	)
}

// --- Designation ---

func (s *service) CreateDesignation(ctx context.Context, req CreateDesignationRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindCategoryByID(ctx, req.ParentID); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	rank := req.Rank
	if rank == 0 {
		rank = 1
	}

	desig := &Designation{
		ID:         uuid.New(),
		Name:       req.Name,
		Rank:       rank,
		CategoryID: uuid.MustParse(req.ParentID),
		Status:     defaultStatus(req.Status),
	}

	if err := qtx.CreateDesignation(ctx, desig); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	s.invalidateChildren(ctx, "designations", req.ParentID)
	return designationToResponse(*desig), nil
}

func (s *service) GetDesignationsByCategory(ctx context.Context, categoryID string) ([]NodeResponse, error) {
	return s.cachedChildren(ctx, "designations", categoryID, func() ([]NodeResponse, error) {
		desigs, err := s.repo.FindDesignationsByCategory(ctx, categoryID, true)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		res := make([]NodeResponse, len(desigs))
		for i, d := range desigs {
			res[i] = designationToResponse(d)
		}
		return res, nil
	})
}

func (s *service) UpdateDesignation(ctx context.Context, id string, req UpdateDesignationRequest) (NodeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return NodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	desig, err := qtx.FindDesignationByID(ctx, id)
	if err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}
	if _, err := qtx.FindCategoryByID(ctx, req.ParentID); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	oldParent := desig.CategoryID.String()
	desig.Name = req.Name
	desig.Rank = req.Rank
	desig.CategoryID = uuid.MustParse(req.ParentID)
	desig.Status = req.Status

	if err := qtx.UpdateDesignation(ctx, desig); err != nil {
		return NodeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return NodeResponse{}, err
	}

	s.invalidateChildren(ctx, "designations", oldParent, req.ParentID)
	return designationToResponse(*desig), nil
}

func (s *service) DeleteDesignation(ctx context.Context, id string) error {
	desig, err := s.repo.FindDesignationByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	return s.deleteNode(ctx, id, "designations", desig.CategoryID.String(),
		s.repo.DesignationHasDependents,
		func(ctx context.Context, qtx Repository) error { return qtx.DeleteDesignation(ctx, id) },
	)
}

// --- Chain validation ---

func (s *service) ValidateChain(ctx context.Context, companyID, departmentID, subDepartmentID, categoryID, designationID string) error {
	dept, err := s.repo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if companyID != "" && dept.CompanyID.String() != companyID {
		return organizationerrors.ErrDepartmentNotInCompany
	}

	sub, err := s.repo.FindSubDepartmentByID(ctx, subDepartmentID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if sub.DepartmentID.String() != departmentID {
		return organizationerrors.ErrSubDepartmentNotInDepartment
	}

	cat, err := s.repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if cat.SubDepartmentID.String() != subDepartmentID {
		return organizationerrors.ErrCategoryNotInSubDepartment
	}

	desig, err := s.repo.FindDesignationByID(ctx, designationID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if desig.CategoryID.String() != categoryID {
		return organizationerrors.ErrDesignationNotInCategory
	}

	return nil
}

// --- helpers ---

// deleteNode refuses deletion while dependents reference the node. The
// registry never cascades.
func (s *service) deleteNode(
	ctx context.Context,
	id, level, parentID string,
	hasDependents func(ctx context.Context, id string) (bool, error),
	del func(ctx context.Context, qtx Repository) error,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dependents, err := hasDependents(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if dependents {
		s.logger.Warn("delete refused, node has dependents",
			zap.String("node_id", id),
			zap.String("level", level),
		)
		return organizationerrors.ErrNodeHasDependents
	}

	if err := del(ctx, qtx); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if level != "" {
		s.invalidateChildren(ctx, level, parentID)
	}
	return nil
}

func (s *service) cachedChildren(
	ctx context.Context,
	level, parentID string,
	load func() ([]NodeResponse, error),
) ([]NodeResponse, error) {
	cacheKey := childrenCacheKey(level, parentID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []NodeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// singleflight collapses the thundering herd when the admin console
	// populates its cascading selects.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		resp, err := load()
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]NodeResponse), nil
}

func (s *service) invalidateChildren(ctx context.Context, level string, parentIDs ...string) {
	if s.rdb == nil {
		return
	}
	for _, pid := range parentIDs {
		key := childrenCacheKey(level, pid)
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			s.logger.Error("invalidate children cache failed",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
}

func defaultStatus(status string) string {
	if status == "" {
		return StatusActive
	}
	return status
}

func companyToResponse(c Company) NodeResponse {
	return NodeResponse{ID: c.ID.String(), Name: c.Name, Status: c.Status}
}

func departmentToResponse(d Department) NodeResponse {
	return NodeResponse{ID: d.ID.String(), Name: d.Name, ParentID: d.CompanyID.String(), Status: d.Status}
}

func subDepartmentToResponse(sd SubDepartment) NodeResponse {
	return NodeResponse{ID: sd.ID.String(), Name: sd.Name, ParentID: sd.DepartmentID.String(), Status: sd.Status}
}

func categoryToResponse(c Category) NodeResponse {
	return NodeResponse{ID: c.ID.String(), Name: c.Name, ParentID: c.SubDepartmentID.String(), Status: c.Status}
}

func designationToResponse(d Designation) NodeResponse {
	return NodeResponse{ID: d.ID.String(), Name: d.Name, ParentID: d.CategoryID.String(), Rank: d.Rank, Status: d.Status}
}
