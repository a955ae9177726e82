package history

type TransferBranchRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	BranchID   string `json:"branch_id" binding:"required,uuid"`
	StartDate  string `json:"start_date" binding:"required"`
}

type IncrementSalaryRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Salary     float64 `json:"salary" binding:"required"`
	StartDate  string  `json:"start_date" binding:"required"`
}

type PromoteRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required,uuid"`
	DepartmentID    string `json:"department_id" binding:"required,uuid"`
	SubDepartmentID string `json:"sub_department_id" binding:"required,uuid"`
	CategoryID      string `json:"category_id" binding:"required,uuid"`
	DesignationID   string `json:"designation_id" binding:"required,uuid"`
	StartDate       string `json:"start_date" binding:"required"`
}

type HistoryEntryResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Kind       string  `json:"kind"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Status     string  `json:"status"`

	BranchID        string  `json:"branch_id,omitempty"`
	Salary          float64 `json:"salary,omitempty"`
	DepartmentID    string  `json:"department_id,omitempty"`
	SubDepartmentID string  `json:"sub_department_id,omitempty"`
	CategoryID      string  `json:"category_id,omitempty"`
	DesignationID   string  `json:"designation_id,omitempty"`
}
