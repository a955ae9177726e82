package catalog

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateQualification(ctx context.Context, q *Qualification) error
	FindAllQualifications(ctx context.Context) ([]Qualification, error)
	FindQualificationByID(ctx context.Context, id string) (*Qualification, error)
	DeleteQualification(ctx context.Context, id string) error
	QualificationInUse(ctx context.Context, id string) (bool, error)

	CreateSkill(ctx context.Context, s *Skill) error
	FindAllSkills(ctx context.Context) ([]Skill, error)
	FindSkillByName(ctx context.Context, name string) (*Skill, error)
	FindSkillsByIDs(ctx context.Context, ids []string) ([]Skill, error)
	DeleteSkill(ctx context.Context, id string) error
	SkillInUse(ctx context.Context, id string) (bool, error)

	CreateAsset(ctx context.Context, a *Asset) error
	FindAllAssets(ctx context.Context) ([]Asset, error)
	FindAssetsByIDs(ctx context.Context, ids []string) ([]Asset, error)
	DeleteAsset(ctx context.Context, id string) error
	AssetInUse(ctx context.Context, id string) (bool, error)
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

func (r *repository) CreateQualification(ctx context.Context, q *Qualification) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) FindAllQualifications(ctx context.Context) ([]Qualification, error) {
	var items []Qualification
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *repository) FindQualificationByID(ctx context.Context, id string) (*Qualification, error) {
	var q Qualification
	err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error
	return &q, err
}

func (r *repository) DeleteQualification(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Qualification{}, "id = ?", id).Error
}

func (r *repository) QualificationInUse(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("qualification_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateSkill(ctx context.Context, s *Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAllSkills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	err := r.db.WithContext(ctx).Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *repository) FindSkillByName(ctx context.Context, name string) (*Skill, error) {
	var s Skill
	err := r.db.WithContext(ctx).First(&s, "lower(name) = ?", strings.ToLower(name)).Error
	return &s, err
}

func (r *repository) FindSkillsByIDs(ctx context.Context, ids []string) ([]Skill, error) {
	var skills []Skill
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

func (r *repository) DeleteSkill(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Skill{}, "id = ?", id).Error
}

func (r *repository) SkillInUse(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employee_skills").
		Where("skill_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateAsset(ctx context.Context, a *Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAllAssets(ctx context.Context) ([]Asset, error) {
	var assets []Asset
	err := r.db.WithContext(ctx).Order("name ASC").Find(&assets).Error
	return assets, err
}

func (r *repository) FindAssetsByIDs(ctx context.Context, ids []string) ([]Asset, error) {
	var assets []Asset
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&assets).Error
	return assets, err
}

func (r *repository) DeleteAsset(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Asset{}, "id = ?", id).Error
}

func (r *repository) AssetInUse(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employee_assets").
		Where("asset_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
