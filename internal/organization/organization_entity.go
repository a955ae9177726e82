package organization

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending" // companies only
)

// The registry is a strict five-level tree:
// Company -> Department -> SubDepartment -> Category -> Designation.

type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Status    string    `gorm:"size:10;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    string    `gorm:"size:20;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SubDepartment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:100;not null"`
	DepartmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	Status       string    `gorm:"size:20;default:active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Category struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"size:100;not null"`
	SubDepartmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	Status          string    `gorm:"size:20;default:active"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Designation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:100"`
	Rank       int       `gorm:"default:1;not null"` // sort priority, lower first
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Status     string    `gorm:"size:20;default:active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
