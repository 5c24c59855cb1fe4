package candidate

import (
	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/view"
)

type CreateCandidateRequest struct {
	Name         string                 `json:"name" binding:"required"`
	Email        string                 `json:"email" binding:"omitempty,email"`
	DepartmentID *int64                 `json:"department_id" binding:"omitempty,gt=0"`
	Status       domain.CandidateStatus `json:"status" binding:"omitempty,oneof=Applied Interview Hired Rejected"`
}

type UpdateCandidateRequest struct {
	Name         string                 `json:"name" binding:"required"`
	Email        string                 `json:"email" binding:"omitempty,email"`
	DepartmentID *int64                 `json:"department_id" binding:"omitempty,gt=0"`
	Status       domain.CandidateStatus `json:"status" binding:"required,oneof=Applied Interview Hired Rejected"`
}

const (
	OutcomeSaved    = "saved"
	OutcomeHired    = "hired"
	OutcomeRejected = "rejected"
)

type SaveCandidateResponse struct {
	Candidate        view.CandidateRow `json:"candidate"`
	Outcome          string            `json:"outcome"`
	Employee         *view.EmployeeRow `json:"employee,omitempty"`
	EmployeeCreated  bool              `json:"employee_created"`
	CandidateRemoved bool              `json:"candidate_removed"`
	Message          string            `json:"message"`
}

// ReconcileDetails is attached to an incomplete reconciliation error.
type ReconcileDetails struct {
	CandidateID      int64  `json:"candidate_id"`
	EmployeeCreated  bool   `json:"employee_created"`
	CandidateRemoved bool   `json:"candidate_removed"`
	Reason           string `json:"reason"`
}
