package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Kind selects one of the three ledgers.
type Kind string

const (
	KindBranch    Kind = "branch"
	KindSalary    Kind = "salary"
	KindPromotion Kind = "promotion"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBranch, KindSalary, KindPromotion:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown history kind: %q", s)
}

// Each ledger entry is a validity interval: open while EndDate is null,
// closed (inactive) once it is set. Per employee per ledger at most one
// entry may be open at a time.

type BranchHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index;not null"`
	BranchID   uuid.UUID `gorm:"type:uuid;not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    *time.Time `gorm:"type:date"`
	Status     string    `gorm:"size:20;default:active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SalaryHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index;not null"`
	Salary     float64   `gorm:"type:numeric(10,2);not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    *time.Time `gorm:"type:date"`
	Status     string    `gorm:"size:20;default:active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PromotionHistory struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;index;not null"`
	DepartmentID    uuid.UUID `gorm:"type:uuid;not null"`
	SubDepartmentID uuid.UUID `gorm:"type:uuid;not null"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null"`
	DesignationID   uuid.UUID `gorm:"type:uuid;not null"`
	StartDate       time.Time `gorm:"type:date;not null"`
	EndDate         *time.Time `gorm:"type:date"`
	Status          string    `gorm:"size:20;default:active"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EmployeeCurrent is the slice of the employee row the ledgers keep in sync:
// the denormalized "current" pointers plus the fields the transition
// validations need.
type EmployeeCurrent struct {
	ID              uuid.UUID
	EmpID           string
	CompanyID       uuid.UUID
	BranchID        uuid.UUID
	DepartmentID    uuid.UUID
	SubDepartmentID uuid.UUID
	CategoryID      uuid.UUID
	DesignationID   uuid.UUID
	Salary          float64
	JoiningDate     time.Time
	Status          string
}
