package candidate

import (
	"strings"
	"time"

	"go-hris-admin/internal/domain"
	"go-hris-admin/internal/view"
)

// DefaultHireName names a hired candidate that has no usable name or email.
const DefaultHireName = "New hire"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Plan lists the follow-up writes a saved candidate requires.
type Plan struct {
	Candidate domain.Candidate

	// Matched is the existing employee with the candidate's email.
	Matched *domain.Employee

	// NewEmployee is set when a Hired candidate has no matching employee.
	NewEmployee *domain.Employee

	DeleteCandidate bool
}

// Empty reports whether the plan has no effects.
func (p Plan) Empty() bool {
	return p.NewEmployee == nil && !p.DeleteCandidate
}

// Decide computes the plan for a candidate as returned by the backend.
// Applied and Interview need nothing. Hired links to an employee with the same
// email (trimmed, case-insensitive), drafting one when none exists, then
// removes the candidate. Rejected only removes the candidate.
func Decide(saved domain.Candidate, employees []domain.Employee, now time.Time) Plan {
	plan := Plan{Candidate: saved}

	switch saved.Status {
	case domain.StatusHired:
		plan.DeleteCandidate = true
		if match, ok := findByEmail(employees, saved.Email); ok {
			plan.Matched = &match
			return plan
		}
		draft := DraftEmployee(saved, now)
		plan.NewEmployee = &draft
	case domain.StatusRejected:
		plan.DeleteCandidate = true
	}
	return plan
}

// DraftEmployee derives the employee record a hired candidate becomes.
func DraftEmployee(c domain.Candidate, now time.Time) domain.Employee {
	name := view.DisplayName(c.Names(), c.Email)
	if name == view.Placeholder {
		name = DefaultHireName
	}

	return domain.Employee{
		Name:         name,
		FirstName:    strings.TrimSpace(c.FirstName),
		LastName:     strings.TrimSpace(c.LastName),
		Email:        strings.TrimSpace(c.Email),
		DepartmentID: c.DepartmentID,
		HireDate:     now.Format(domain.DateLayout),
		Salary:       new(float64),
	}
}

// findByEmail never matches a blank email.
func findByEmail(employees []domain.Employee, email string) (domain.Employee, bool) {
	key := domain.NormalizeEmail(email)
	if key == "" {
		return domain.Employee{}, false
	}
	for _, e := range employees {
		if domain.NormalizeEmail(e.Email) == key {
			return e, true
		}
	}
	return domain.Employee{}, false
}
