package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

const EventEmployeeCreated = "employee_created"

const (
	SourceConsole       = "console"
	SourceCandidateHire = "candidate_hire"
)

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   int64     `json:"employee_id"`
	Email        string    `json:"email,omitempty"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	Source       string    `json:"source"`
	CandidateID  int64     `json:"candidate_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
