package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	TypeEmployeeHired     = "employee_hired"
	TypeEmployeeResigned  = "employee_resigned"
	TypeEmployeePromoted  = "employee_promoted"
	TypeBranchTransferred = "branch_transferred"
)

// EmployeeLifecycleEvent is the payload for every lifecycle topic message.
// Fields that do not apply to a given event type are left empty.
type EmployeeLifecycleEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	EmpID         string    `json:"emp_id"`
	BranchID      string    `json:"branch_id,omitempty"`
	DesignationID string    `json:"designation_id,omitempty"`
	EffectiveDate string    `json:"effective_date,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
