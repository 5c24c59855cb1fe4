package view

import (
	"strconv"

	"go-hris-admin/internal/domain"
)

type EmployeeRow struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email,omitempty"`
	Role           string   `json:"role,omitempty"`
	HireDate       string   `json:"hire_date,omitempty"`
	DepartmentID   *int64   `json:"department_id,omitempty"`
	DepartmentName string   `json:"department_name"`
	Salary         *float64 `json:"salary,omitempty"`
}

func (r EmployeeRow) SearchFields() []string {
	return []string{r.Name, r.Email, r.DepartmentName}
}

type CandidateRow struct {
	ID             int64                  `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email,omitempty"`
	Status         domain.CandidateStatus `json:"status"`
	DepartmentID   *int64                 `json:"department_id,omitempty"`
	DepartmentName string                 `json:"department_name"`
}

func (r CandidateRow) SearchFields() []string {
	return []string{r.Name, r.Email, r.DepartmentName, string(r.Status)}
}

type DepartmentRow struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	EmployeeCount  int    `json:"employee_count"`
	CandidateCount int    `json:"candidate_count"`
}

func (r DepartmentRow) SearchFields() []string {
	return []string{strconv.FormatInt(r.ID, 10), r.Name}
}

type CompanyRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

func (r CompanyRow) SearchFields() []string {
	return []string{strconv.FormatInt(r.ID, 10), r.Name, r.Location}
}

type SalaryRow struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	EffectiveDate string  `json:"effective_date,omitempty"`
}

func (r SalaryRow) SearchFields() []string {
	return []string{r.EmployeeName, strconv.FormatFloat(r.Amount, 'f', -1, 64), r.Currency}
}

// DepartmentName resolves id against departments, "" when unresolved.
func DepartmentName(id *int64, departments []domain.Department) string {
	if id == nil {
		return ""
	}
	for _, d := range departments {
		if d.ID == *id {
			return d.Name
		}
	}
	return ""
}

func EmployeeRows(employees []domain.Employee, departments []domain.Department) []EmployeeRow {
	rows := make([]EmployeeRow, len(employees))
	for i, e := range employees {
		rows[i] = EmployeeRow{
			ID:             e.ID,
			Name:           EmployeeName(e),
			Email:          e.Email,
			Role:           e.Role,
			HireDate:       e.HireDate,
			DepartmentID:   e.DepartmentID,
			DepartmentName: DepartmentName(e.DepartmentID, departments),
			Salary:         e.Salary,
		}
	}
	return rows
}

func CandidateRows(candidates []domain.Candidate, departments []domain.Department) []CandidateRow {
	rows := make([]CandidateRow, len(candidates))
	for i, c := range candidates {
		rows[i] = CandidateRow{
			ID:             c.ID,
			Name:           CandidateName(c),
			Email:          c.Email,
			Status:         c.Status,
			DepartmentID:   c.DepartmentID,
			DepartmentName: DepartmentName(c.DepartmentID, departments),
		}
	}
	return rows
}

func DepartmentRows(departments []domain.Department, employees []domain.Employee, candidates []domain.Candidate) []DepartmentRow {
	empCount := make(map[int64]int)
	for _, e := range employees {
		if e.DepartmentID != nil {
			empCount[*e.DepartmentID]++
		}
	}
	candCount := make(map[int64]int)
	for _, c := range candidates {
		if c.DepartmentID != nil {
			candCount[*c.DepartmentID]++
		}
	}

	rows := make([]DepartmentRow, len(departments))
	for i, d := range departments {
		rows[i] = DepartmentRow{
			ID:             d.ID,
			Name:           d.Name,
			EmployeeCount:  empCount[d.ID],
			CandidateCount: candCount[d.ID],
		}
	}
	return rows
}

func CompanyRows(companies []domain.Company) []CompanyRow {
	rows := make([]CompanyRow, len(companies))
	for i, c := range companies {
		rows[i] = CompanyRow{ID: c.ID, Name: c.Name, Location: c.Location}
	}
	return rows
}

// SalaryRows joins salaries to employee names; a dangling employeeId shows
// Placeholder.
func SalaryRows(salaries []domain.Salary, employees []domain.Employee) []SalaryRow {
	byID := make(map[int64]domain.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	rows := make([]SalaryRow, len(salaries))
	for i, s := range salaries {
		name := Placeholder
		if e, ok := byID[s.EmployeeID]; ok {
			name = EmployeeName(e)
		}
		rows[i] = SalaryRow{
			ID:            s.ID,
			EmployeeID:    s.EmployeeID,
			EmployeeName:  name,
			Amount:        s.Amount,
			Currency:      s.Currency,
			EffectiveDate: s.EffectiveDate,
		}
	}
	return rows
}

type Member struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type DepartmentMembers struct {
	Department domain.Department `json:"department"`
	Employees  []Member          `json:"employees"`
	Candidates []Member          `json:"candidates"`
}

func Members(dept domain.Department, employees []domain.Employee, candidates []domain.Candidate) DepartmentMembers {
	out := DepartmentMembers{Department: dept, Employees: []Member{}, Candidates: []Member{}}
	for _, e := range employees {
		if e.DepartmentID != nil && *e.DepartmentID == dept.ID {
			out.Employees = append(out.Employees, Member{ID: e.ID, Name: EmployeeName(e), Email: e.Email})
		}
	}
	for _, c := range candidates {
		if c.DepartmentID != nil && *c.DepartmentID == dept.ID {
			out.Candidates = append(out.Candidates, Member{ID: c.ID, Name: CandidateName(c), Email: c.Email})
		}
	}
	return out
}
