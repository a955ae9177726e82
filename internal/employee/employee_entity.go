package employee

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/businessanalystdm/projecthrm/internal/catalog"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "in-active"
)

const (
	RatingPoor      = "poor"
	RatingAverage   = "average"
	RatingGood      = "good"
	RatingExcellent = "excellent"
)

// Experience is one prior-employment record on the profile. The list is
// ordered as entered and stored as a JSON column.
type Experience struct {
	Title   string  `json:"title"`
	Company string  `json:"company"`
	Years   float64 `json:"years"`
}

type Experiences []Experience

func (e Experiences) Value() (driver.Value, error) {
	if e == nil {
		return "[]", nil
	}
	b, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (e *Experiences) Scan(value any) error {
	if value == nil {
		*e = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported experiences column type %T", value)
	}
	return json.Unmarshal(b, e)
}

// Employee carries the personal profile plus the denormalized "current"
// pointers the history ledgers keep in sync. The row itself is never
// historized.
type Employee struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmpID string    `gorm:"size:7;uniqueIndex;not null"`

	FirstName    string     `gorm:"size:100;not null"`
	LastName     string     `gorm:"size:100"`
	DOB          *time.Time `gorm:"type:date"`
	Gender       string     `gorm:"size:10"`
	Address      string     `gorm:"size:255"`
	Mobile       string     `gorm:"size:16"`
	SecondMobile string     `gorm:"size:16"`
	Email        string     `gorm:"size:100"`
	BloodGroup   string     `gorm:"size:10"`
	AadharNumber string     `gorm:"size:20"`

	QualificationID *uuid.UUID `gorm:"type:uuid"`
	CompanyID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	BranchID        uuid.UUID  `gorm:"type:uuid;index;not null"`
	DepartmentID    uuid.UUID  `gorm:"type:uuid;not null"`
	SubDepartmentID uuid.UUID  `gorm:"type:uuid;not null"`
	CategoryID      uuid.UUID  `gorm:"type:uuid;not null"`
	DesignationID   uuid.UUID  `gorm:"type:uuid;not null"`

	Salary        float64   `gorm:"type:numeric(10,2);not null"`
	JoiningDate   time.Time `gorm:"type:date;not null"`
	WorkStartTime string    `gorm:"size:8"`
	WorkEndTime   string    `gorm:"size:8"`

	PhotoPath    string `gorm:"size:255"`
	DocumentPath string `gorm:"size:255"`

	Experiences Experiences     `gorm:"type:jsonb;default:'[]'"`
	Skills      []catalog.Skill `gorm:"many2many:employee_skills"`
	Assets      []catalog.Asset `gorm:"many2many:employee_assets"`

	Status        string     `gorm:"size:20;default:active"`
	ResigningDate *time.Time `gorm:"type:date"`
	ResignReason  string     `gorm:"size:255"`

	Rating         string     `gorm:"size:20"`
	LastRatingDate *time.Time `gorm:"type:date"`
	Remarks        string     `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
