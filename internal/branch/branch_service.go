package branch

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	brancherrors "github.com/businessanalystdm/projecthrm/internal/branch/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var branchCodePattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

type Service interface {
	CreateZone(ctx context.Context, req CreateZoneRequest) (ZoneResponse, error)
	GetZones(ctx context.Context) ([]ZoneResponse, error)
	UpdateZone(ctx context.Context, id string, req UpdateZoneRequest) (ZoneResponse, error)
	DeleteZone(ctx context.Context, id string) error

	CreateBranch(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)
	GetBranches(ctx context.Context, zoneID string) ([]BranchResponse, error)
	GetBranchByID(ctx context.Context, id string) (BranchResponse, error)
	UpdateBranch(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error)
	DeleteBranch(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("branch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("branch.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateZone(ctx context.Context, req CreateZoneRequest) (ZoneResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ZoneResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	zone := &Zone{
		ID:     uuid.New(),
		Name:   req.Name,
		Status: status,
	}

	if err := qtx.CreateZone(ctx, zone); err != nil {
		s.logger.Error("create zone failed", zap.Error(err))
		return ZoneResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ZoneResponse{}, err
	}

	return zoneToResponse(*zone), nil
}

func (s *service) GetZones(ctx context.Context) ([]ZoneResponse, error) {
	zones, err := s.repo.FindAllZones(ctx, false)
	if err != nil {
		return nil, err
	}

	res := make([]ZoneResponse, len(zones))
	for i, z := range zones {
		res[i] = zoneToResponse(z)
	}
	return res, nil
}

func (s *service) UpdateZone(ctx context.Context, id string, req UpdateZoneRequest) (ZoneResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ZoneResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	zone, err := qtx.FindZoneByID(ctx, id)
	if err != nil {
		return ZoneResponse{}, mapZoneError(err)
	}

	zone.Name = req.Name
	zone.Status = req.Status

	if err := qtx.UpdateZone(ctx, zone); err != nil {
		return ZoneResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ZoneResponse{}, err
	}

	return zoneToResponse(*zone), nil
}

func (s *service) DeleteZone(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindZoneByID(ctx, id); err != nil {
		return mapZoneError(err)
	}

	hasBranches, err := qtx.ZoneHasBranches(ctx, id)
	if err != nil {
		return err
	}
	if hasBranches {
		return brancherrors.ErrZoneHasBranches
	}

	if err := qtx.DeleteZone(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) CreateBranch(ctx context.Context, req CreateBranchRequest) (BranchResponse, error) {
	if !branchCodePattern.MatchString(req.Code) {
		return BranchResponse{}, brancherrors.ErrInvalidBranchCode
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BranchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindZoneByID(ctx, req.ZoneID); err != nil {
		return BranchResponse{}, mapZoneError(err)
	}

	if _, err := qtx.FindBranchByCode(ctx, req.Code); err == nil {
		return BranchResponse{}, brancherrors.ErrBranchCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return BranchResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	b := &Branch{
		ID:     uuid.New(),
		Name:   req.Name,
		Code:   req.Code,
		ZoneID: uuid.MustParse(req.ZoneID),
		Status: status,
	}

	if err := qtx.CreateBranch(ctx, b); err != nil {
		s.logger.Error("create branch failed", zap.Error(err))
		return BranchResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BranchResponse{}, err
	}

	s.logger.Info("branch created",
		zap.String("branch_id", b.ID.String()),
		zap.String("code", b.Code),
	)
	return branchToResponse(*b), nil
}

// GetBranches lists branches in a zone, or every branch when zoneID is empty.
func (s *service) GetBranches(ctx context.Context, zoneID string) ([]BranchResponse, error) {
	var (
		branches []Branch
		err      error
	)
	if zoneID == "" {
		branches, err = s.repo.FindAllBranches(ctx, false)
	} else {
		branches, err = s.repo.FindBranchesByZone(ctx, zoneID, false)
	}
	if err != nil {
		return nil, err
	}

	res := make([]BranchResponse, len(branches))
	for i, b := range branches {
		res[i] = branchToResponse(b)
	}
	return res, nil
}

func (s *service) GetBranchByID(ctx context.Context, id string) (BranchResponse, error) {
	b, err := s.repo.FindBranchByID(ctx, id)
	if err != nil {
		return BranchResponse{}, mapBranchError(err)
	}
	return branchToResponse(*b), nil
}

func (s *service) UpdateBranch(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error) {
	if !branchCodePattern.MatchString(req.Code) {
		return BranchResponse{}, brancherrors.ErrInvalidBranchCode
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BranchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := qtx.FindBranchByID(ctx, id)
	if err != nil {
		return BranchResponse{}, mapBranchError(err)
	}
	if _, err := qtx.FindZoneByID(ctx, req.ZoneID); err != nil {
		return BranchResponse{}, mapZoneError(err)
	}

	if req.Code != b.Code {
		if other, err := qtx.FindBranchByCode(ctx, req.Code); err == nil && other.ID != b.ID {
			return BranchResponse{}, brancherrors.ErrBranchCodeTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return BranchResponse{}, err
		}
	}

	b.Name = req.Name
	b.Code = req.Code
	b.ZoneID = uuid.MustParse(req.ZoneID)
	b.Status = req.Status

	if err := qtx.UpdateBranch(ctx, b); err != nil {
		return BranchResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BranchResponse{}, err
	}

	return branchToResponse(*b), nil
}

func (s *service) DeleteBranch(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindBranchByID(ctx, id); err != nil {
		return mapBranchError(err)
	}

	inUse, err := qtx.BranchInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		s.logger.Warn("delete branch refused, still referenced", zap.String("branch_id", id))
		return brancherrors.ErrBranchInUse
	}

	if err := qtx.DeleteBranch(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func zoneToResponse(z Zone) ZoneResponse {
	return ZoneResponse{ID: z.ID.String(), Name: z.Name, Status: z.Status}
}

func branchToResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:     b.ID.String(),
		Name:   b.Name,
		Code:   b.Code,
		ZoneID: b.ZoneID.String(),
		Status: b.Status,
	}
}
