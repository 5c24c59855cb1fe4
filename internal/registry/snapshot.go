package registry

import "go-hris-admin/internal/domain"

// Snapshot is one consistent view of every collection. Its slices are
// shared between readers and must not be modified.
type Snapshot struct {
	Cycle       uint64
	Departments []domain.Department
	Employees   []domain.Employee
	Candidates  []domain.Candidate
	Companies   []domain.Company
	Salaries    []domain.Salary
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		Departments: []domain.Department{},
		Employees:   []domain.Employee{},
		Candidates:  []domain.Candidate{},
		Companies:   []domain.Company{},
		Salaries:    []domain.Salary{},
	}
}

func withAppended[T domain.Record](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// withReplaced swaps the record sharing item's key. An id no longer in the
// snapshot is left absent.
func withReplaced[T domain.Record](items []T, item T) ([]T, bool) {
	for i := range items {
		if items[i].Key() == item.Key() {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = item
			return out, true
		}
	}
	return items, false
}

func withRemoved[T domain.Record](items []T, id int64) ([]T, bool) {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.Key() != id {
			out = append(out, it)
		}
	}
	return out, len(out) != len(items)
}

// clearDepartmentRefs detaches employees and candidates from a deleted
// department.
func clearDepartmentRefs(s *Snapshot, id int64) []domain.Kind {
	var changed []domain.Kind

	employees := make([]domain.Employee, len(s.Employees))
	touched := false
	for i, e := range s.Employees {
		if e.DepartmentID != nil && *e.DepartmentID == id {
			e.DepartmentID = nil
			touched = true
		}
		employees[i] = e
	}
	if touched {
		s.Employees = employees
		changed = append(changed, domain.KindEmployees)
	}

	candidates := make([]domain.Candidate, len(s.Candidates))
	touched = false
	for i, c := range s.Candidates {
		if c.DepartmentID != nil && *c.DepartmentID == id {
			c.DepartmentID = nil
			touched = true
		}
		candidates[i] = c
	}
	if touched {
		s.Candidates = candidates
		changed = append(changed, domain.KindCandidates)
	}
	return changed
}
