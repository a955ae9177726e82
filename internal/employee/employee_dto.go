package employee

// OptionsCacheKey caches the id/name option list served to the admin
// console's employee selectors; the lifecycle consumer invalidates it.
const OptionsCacheKey = "employee:options"

type ExperienceInput struct {
	Title   string  `json:"title" binding:"required,max=100"`
	Company string  `json:"company" binding:"required,max=100"`
	Years   float64 `json:"years" binding:"min=0"`
}

type HireEmployeeRequest struct {
	EmpID string `json:"emp_id" binding:"omitempty,len=7,numeric"`

	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"omitempty,max=100"`
	DOB          string `json:"dob" binding:"omitempty"`
	Gender       string `json:"gender" binding:"required,oneof=male female"`
	Address      string `json:"address" binding:"omitempty,max=255"`
	Mobile       string `json:"mobile" binding:"required"`
	SecondMobile string `json:"second_mobile" binding:"omitempty"`
	Email        string `json:"email" binding:"required,email"`
	BloodGroup   string `json:"blood_group" binding:"omitempty,oneof=a+ve a-ve b+ve b-ve ab+ve ab-ve o+ve o-ve"`
	AadharNumber string `json:"aadhar_number" binding:"omitempty,max=20"`

	QualificationID string `json:"qualification_id" binding:"omitempty,uuid"`
	CompanyID       string `json:"company_id" binding:"required,uuid"`
	BranchID        string `json:"branch_id" binding:"required,uuid"`
	DepartmentID    string `json:"department_id" binding:"required,uuid"`
	SubDepartmentID string `json:"sub_department_id" binding:"required,uuid"`
	CategoryID      string `json:"category_id" binding:"required,uuid"`
	DesignationID   string `json:"designation_id" binding:"required,uuid"`

	Salary        float64 `json:"salary" binding:"required,gt=0"`
	JoiningDate   string  `json:"joining_date" binding:"required"`
	WorkStartTime string  `json:"work_start_time" binding:"omitempty"`
	WorkEndTime   string  `json:"work_end_time" binding:"omitempty"`

	PhotoPath    string `json:"photo_path" binding:"omitempty,max=255"`
	DocumentPath string `json:"document_path" binding:"omitempty,max=255"`

	Experiences []ExperienceInput `json:"experiences" binding:"omitempty,dive"`
	SkillNames  []string          `json:"skill_names" binding:"omitempty,dive,max=100"`
	AssetIDs    []string          `json:"asset_ids" binding:"omitempty,dive,uuid"`

	Remarks string `json:"remarks" binding:"omitempty,max=255"`
}

// EditEmployeeRequest mirrors the hire payload plus the effective date the
// branch/salary/promotion transitions take hold on when those dimensions
// changed.
type EditEmployeeRequest struct {
	EffectiveDate string `json:"effective_date" binding:"required"`

	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"omitempty,max=100"`
	DOB          string `json:"dob" binding:"omitempty"`
	Gender       string `json:"gender" binding:"required,oneof=male female"`
	Address      string `json:"address" binding:"omitempty,max=255"`
	Mobile       string `json:"mobile" binding:"required"`
	SecondMobile string `json:"second_mobile" binding:"omitempty"`
	Email        string `json:"email" binding:"required,email"`
	BloodGroup   string `json:"blood_group" binding:"omitempty,oneof=a+ve a-ve b+ve b-ve ab+ve ab-ve o+ve o-ve"`
	AadharNumber string `json:"aadhar_number" binding:"omitempty,max=20"`

	QualificationID string `json:"qualification_id" binding:"omitempty,uuid"`
	BranchID        string `json:"branch_id" binding:"required,uuid"`
	DepartmentID    string `json:"department_id" binding:"required,uuid"`
	SubDepartmentID string `json:"sub_department_id" binding:"required,uuid"`
	CategoryID      string `json:"category_id" binding:"required,uuid"`
	DesignationID   string `json:"designation_id" binding:"required,uuid"`

	Salary        float64 `json:"salary" binding:"required,gt=0"`
	WorkStartTime string  `json:"work_start_time" binding:"omitempty"`
	WorkEndTime   string  `json:"work_end_time" binding:"omitempty"`

	PhotoPath    string `json:"photo_path" binding:"omitempty,max=255"`
	DocumentPath string `json:"document_path" binding:"omitempty,max=255"`

	Experiences []ExperienceInput `json:"experiences" binding:"omitempty,dive"`
	SkillNames  []string          `json:"skill_names" binding:"omitempty,dive,max=100"`
	AssetIDs    []string          `json:"asset_ids" binding:"omitempty,dive,uuid"`

	Rating  string `json:"rating" binding:"omitempty,oneof=poor average good excellent"`
	Remarks string `json:"remarks" binding:"omitempty,max=255"`
}

type ResignEmployeeRequest struct {
	ResigningDate string `json:"resigning_date" binding:"required"`
	Reason        string `json:"reason" binding:"omitempty,max=255"`
}

// ListFilter drives the employee list endpoint. View switches the listing to
// a canned report: "resigned" for former employees, "moved" for employees
// with at least one transfer, increment, or promotion since hire.
type ListFilter struct {
	Status    string `form:"status" binding:"omitempty,oneof=active in-active"`
	BranchID  string `form:"branch_id" binding:"omitempty,uuid"`
	CompanyID string `form:"company_id" binding:"omitempty,uuid"`
	View      string `form:"view" binding:"omitempty,oneof=resigned moved"`
}

type EmployeeResponse struct {
	ID    string `json:"id"`
	EmpID string `json:"emp_id"`

	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	DOB          string `json:"dob,omitempty"`
	Gender       string `json:"gender"`
	Address      string `json:"address,omitempty"`
	Mobile       string `json:"mobile"`
	SecondMobile string `json:"second_mobile,omitempty"`
	Email        string `json:"email"`
	BloodGroup   string `json:"blood_group,omitempty"`
	AadharNumber string `json:"aadhar_number,omitempty"`

	QualificationID string `json:"qualification_id,omitempty"`
	CompanyID       string `json:"company_id"`
	BranchID        string `json:"branch_id"`
	DepartmentID    string `json:"department_id"`
	SubDepartmentID string `json:"sub_department_id"`
	CategoryID      string `json:"category_id"`
	DesignationID   string `json:"designation_id"`

	Salary        float64 `json:"salary"`
	JoiningDate   string  `json:"joining_date"`
	WorkStartTime string  `json:"work_start_time,omitempty"`
	WorkEndTime   string  `json:"work_end_time,omitempty"`

	PhotoPath    string `json:"photo_path,omitempty"`
	DocumentPath string `json:"document_path,omitempty"`

	Experiences []ExperienceInput `json:"experiences"`
	Skills      []string          `json:"skills"`
	AssetIDs    []string          `json:"asset_ids"`

	Status        string `json:"status"`
	ResigningDate string `json:"resigning_date,omitempty"`
	ResignReason  string `json:"resign_reason,omitempty"`

	Rating         string `json:"rating,omitempty"`
	LastRatingDate string `json:"last_rating_date,omitempty"`
	Remarks        string `json:"remarks,omitempty"`

	WorkDurationDays int  `json:"work_duration_days"`
	IsRatingDue      bool `json:"is_rating_due"`
}

type EmployeeOption struct {
	ID       string `json:"id"`
	EmpID    string `json:"emp_id"`
	FullName string `json:"full_name"`
}
