package branch

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Zone groups branches geographically. Branch codes are short uppercase
// mnemonics used on payslips and reports.

type Zone struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Status    string    `gorm:"size:20;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Code      string    `gorm:"size:5;uniqueIndex;not null"`
	ZoneID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Status    string    `gorm:"size:20;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
