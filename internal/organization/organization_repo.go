package organization

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateCompany(ctx context.Context, c *Company) error
	FindAllCompanies(ctx context.Context) ([]Company, error)
	FindCompanyByID(ctx context.Context, id string) (*Company, error)
	UpdateCompany(ctx context.Context, c *Company) error
	DeleteCompany(ctx context.Context, id string) error
	CompanyHasDependents(ctx context.Context, id string) (bool, error)

	CreateDepartment(ctx context.Context, d *Department) error
	FindDepartmentsByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Department, error)
	FindDepartmentByID(ctx context.Context, id string) (*Department, error)
	UpdateDepartment(ctx context.Context, d *Department) error
	DeleteDepartment(ctx context.Context, id string) error
	DepartmentHasDependents(ctx context.Context, id string) (bool, error)

	CreateSubDepartment(ctx context.Context, s *SubDepartment) error
	FindSubDepartmentsByDepartment(ctx context.Context, departmentID string, activeOnly bool) ([]SubDepartment, error)
	FindSubDepartmentByID(ctx context.Context, id string) (*SubDepartment, error)
	UpdateSubDepartment(ctx context.Context, s *SubDepartment) error
	DeleteSubDepartment(ctx context.Context, id string) error
	SubDepartmentHasDependents(ctx context.Context, id string) (bool, error)

	CreateCategory(ctx context.Context, c *Category) error
	FindCategoriesBySubDepartment(ctx context.Context, subDepartmentID string, activeOnly bool) ([]Category, error)
	FindCategoryByID(ctx context.Context, id string) (*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id string) error
	CategoryHasDependents(ctx context.Context, id string) (bool, error)

	CreateDesignation(ctx context.Context, d *Designation) error
	FindDesignationsByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]Designation, error)
	FindDesignationByID(ctx context.Context, id string) (*Designation, error)
	UpdateDesignation(ctx context.Context, d *Designation) error
	DeleteDesignation(ctx context.Context, id string) error
	DesignationHasDependents(ctx context.Context, id string) (bool, error)
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

func activeScope(activeOnly bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if activeOnly {
			return db.Where("status = ?", StatusActive)
		}
		return db
	}
}

// --- Company ---

func (r *repository) CreateCompany(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAllCompanies(ctx context.Context) ([]Company, error) {
	var companies []Company
	err := r.db.WithContext(ctx).Order("name ASC").Find(&companies).Error
	return companies, err
}

func (r *repository) FindCompanyByID(ctx context.Context, id string) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) UpdateCompany(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) DeleteCompany(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Company{}, "id = ?", id).Error
}

func (r *repository) CompanyHasDependents(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Department{}).
		Where("company_id = ?", id).
		Count(&count).Error
	if err != nil || count > 0 {
		return count > 0, err
	}
	return r.countEmployees(ctx, "company_id", id)
}

// --- Department ---

func (r *repository) CreateDepartment(ctx context.Context, d *Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindDepartmentsByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(activeScope(activeOnly)).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindDepartmentByID(ctx context.Context, id string) (*Department, error) {
	var d Department
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) UpdateDepartment(ctx context.Context, d *Department) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) DeleteDepartment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id).Error
}

func (r *repository) DepartmentHasDependents(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SubDepartment{}).
		Where("department_id = ?", id).
		Count(&count).Error
	if err != nil || count > 0 {
		return count > 0, err
	}
	return r.countEmployees(ctx, "department_id", id)
}

// --- SubDepartment ---

func (r *repository) CreateSubDepartment(ctx context.Context, s *SubDepartment) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindSubDepartmentsByDepartment(ctx context.Context, departmentID string, activeOnly bool) ([]SubDepartment, error) {
	var subs []SubDepartment
	err := r.db.WithContext(ctx).
		Scopes(activeScope(activeOnly)).
		Where("department_id = ?", departmentID).
		Order("name ASC").
		Find(&subs).Error
	return subs, err
}

func (r *repository) FindSubDepartmentByID(ctx context.Context, id string) (*SubDepartment, error) {
	var s SubDepartment
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) UpdateSubDepartment(ctx context.Context, s *SubDepartment) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) DeleteSubDepartment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SubDepartment{}, "id = ?", id).Error
}

func (r *repository) SubDepartmentHasDependents(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Category{}).
		Where("sub_department_id = ?", id).
		Count(&count).Error
	if err != nil || count > 0 {
		return count > 0, err
	}
	return r.countEmployees(ctx, "sub_department_id", id)
}

// --- Category ---

func (r *repository) CreateCategory(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindCategoriesBySubDepartment(ctx context.Context, subDepartmentID string, activeOnly bool) ([]Category, error) {
	var cats []Category
	err := r.db.WithContext(ctx).
		Scopes(activeScope(activeOnly)).
		Where("sub_department_id = ?", subDepartmentID).
		Order("name ASC").
		Find(&cats).Error
	return cats, err
}

func (r *repository) FindCategoryByID(ctx context.Context, id string) (*Category, error) {
	var c Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) UpdateCategory(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id).Error
}

func (r *repository) CategoryHasDependents(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Designation{}).
		Where("category_id = ?", id).
		Count(&count).Error
	if err != nil || count > 0 {
		return count > 0, err
	}
	return r.countEmployees(ctx, "category_id", id)
}

// --- Designation ---

func (r *repository) CreateDesignation(ctx context.Context, d *Designation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindDesignationsByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]Designation, error) {
	var desigs []Designation
	err := r.db.WithContext(ctx).
		Scopes(activeScope(activeOnly)).
		Where("category_id = ?", categoryID).
		Order("rank ASC, name ASC").
		Find(&desigs).Error
	return desigs, err
}

func (r *repository) FindDesignationByID(ctx context.Context, id string) (*Designation, error) {
	var d Designation
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) UpdateDesignation(ctx context.Context, d *Designation) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) DeleteDesignation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Designation{}, "id = ?", id).Error
}

func (r *repository) DesignationHasDependents(ctx context.Context, id string) (bool, error) {
	return r.countEmployees(ctx, "designation_id", id)
}

// countEmployees checks whether any employee row still references the node.
func (r *repository) countEmployees(ctx context.Context, column, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where(column+" = ?", id).
		Count(&count).Error
	return count > 0, err
}
