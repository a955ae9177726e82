package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	catalogerrors "github.com/businessanalystdm/projecthrm/internal/catalog/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	CreateQualification(ctx context.Context, req CreateItemRequest) (ItemResponse, error)
	GetQualifications(ctx context.Context) ([]ItemResponse, error)
	DeleteQualification(ctx context.Context, id string) error

	CreateSkill(ctx context.Context, req CreateItemRequest) (ItemResponse, error)
	GetSkills(ctx context.Context) ([]ItemResponse, error)
	DeleteSkill(ctx context.Context, id string) error

	// GetOrCreateSkill resolves a free-text skill name inside an existing
	// transaction, creating the row on first sight.
	GetOrCreateSkill(ctx context.Context, qtx Repository, name string) (*Skill, error)

	CreateAsset(ctx context.Context, req CreateItemRequest) (ItemResponse, error)
	GetAssets(ctx context.Context) ([]ItemResponse, error)
	DeleteAsset(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateQualification(ctx context.Context, req CreateItemRequest) (ItemResponse, error) {
	q := &Qualification{ID: uuid.New(), Name: strings.TrimSpace(req.Name)}
	if err := s.createItem(ctx, func(ctx context.Context, qtx Repository) error {
		return qtx.CreateQualification(ctx, q)
	}); err != nil {
		return ItemResponse{}, err
	}
	return ItemResponse{ID: q.ID.String(), Name: q.Name}, nil
}

func (s *service) GetQualifications(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.repo.FindAllQualifications(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]ItemResponse, len(items))
	for i, q := range items {
		res[i] = ItemResponse{ID: q.ID.String(), Name: q.Name}
	}
	return res, nil
}

func (s *service) DeleteQualification(ctx context.Context, id string) error {
	return s.deleteItem(ctx, id, s.repo.QualificationInUse,
		func(ctx context.Context, qtx Repository) error { return qtx.DeleteQualification(ctx, id) })
}

func (s *service) CreateSkill(ctx context.Context, req CreateItemRequest) (ItemResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	skill, err := s.GetOrCreateSkill(ctx, qtx, req.Name)
	if err != nil {
		return ItemResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ItemResponse{}, err
	}

	return ItemResponse{ID: skill.ID.String(), Name: skill.Name}, nil
}

func (s *service) GetSkills(ctx context.Context) ([]ItemResponse, error) {
	skills, err := s.repo.FindAllSkills(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]ItemResponse, len(skills))
	for i, sk := range skills {
		res[i] = ItemResponse{ID: sk.ID.String(), Name: sk.Name}
	}
	return res, nil
}

func (s *service) DeleteSkill(ctx context.Context, id string) error {
	return s.deleteItem(ctx, id, s.repo.SkillInUse,
		func(ctx context.Context, qtx Repository) error { return qtx.DeleteSkill(ctx, id) })
}

func (s *service) GetOrCreateSkill(ctx context.Context, qtx Repository, name string) (*Skill, error) {
	name = strings.TrimSpace(name)

	existing, err := qtx.FindSkillByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	skill := &Skill{ID: uuid.New(), Name: name}
	if err := qtx.CreateSkill(ctx, skill); err != nil {
		return nil, err
	}
	s.logger.Info("skill created", zap.String("name", name))
	return skill, nil
}

func (s *service) CreateAsset(ctx context.Context, req CreateItemRequest) (ItemResponse, error) {
	a := &Asset{ID: uuid.New(), Name: strings.TrimSpace(req.Name)}
	if err := s.createItem(ctx, func(ctx context.Context, qtx Repository) error {
		return qtx.CreateAsset(ctx, a)
	}); err != nil {
		return ItemResponse{}, err
	}
	return ItemResponse{ID: a.ID.String(), Name: a.Name}, nil
}

func (s *service) GetAssets(ctx context.Context) ([]ItemResponse, error) {
	assets, err := s.repo.FindAllAssets(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]ItemResponse, len(assets))
	for i, a := range assets {
		res[i] = ItemResponse{ID: a.ID.String(), Name: a.Name}
	}
	return res, nil
}

func (s *service) DeleteAsset(ctx context.Context, id string) error {
	return s.deleteItem(ctx, id, s.repo.AssetInUse,
		func(ctx context.Context, qtx Repository) error { return qtx.DeleteAsset(ctx, id) })
}

func (s *service) createItem(ctx context.Context, create func(ctx context.Context, qtx Repository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := create(ctx, s.repo.WithTx(tx)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) deleteItem(
	ctx context.Context,
	id string,
	inUse func(ctx context.Context, id string) (bool, error),
	del func(ctx context.Context, qtx Repository) error,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	used, err := inUse(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return catalogerrors.ErrItemInUse
	}

	if err := del(ctx, s.repo.WithTx(tx)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalogerrors.ErrItemNotFound
		}
		return err
	}

	return tx.Commit()
}
