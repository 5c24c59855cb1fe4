package domain

// Record is implemented by every HR entity; the key is the backend-assigned id.
type Record interface {
	Key() int64
}

// Kind names one entity collection. Its value doubles as the REST resource path.
type Kind string

const (
	KindDepartments Kind = "departments"
	KindEmployees   Kind = "employees"
	KindCandidates  Kind = "candidates"
	KindCompanies   Kind = "companies"
	KindSalaries    Kind = "salaries"
)

// Kinds lists every collection in refresh order.
var Kinds = []Kind{KindDepartments, KindEmployees, KindCandidates, KindCompanies, KindSalaries}

// DateLayout is the wire format of hireDate and effectiveDate.
const DateLayout = "2006-01-02"

type Department struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:255;not null" validate:"required"`
}

func (d Department) Key() int64 { return d.ID }

// NameFields carries every field the backend has been seen using for a
// person's name.
type NameFields struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Username  string `json:"username,omitempty"`
}

type Employee struct {
	ID           int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string   `json:"name" gorm:"size:255"`
	FirstName    string   `json:"firstName,omitempty" gorm:"size:120"`
	LastName     string   `json:"lastName,omitempty" gorm:"size:120"`
	FullName     string   `json:"fullName,omitempty" gorm:"size:255"`
	Username     string   `json:"username,omitempty" gorm:"size:120"`
	Email        string   `json:"email,omitempty" gorm:"size:255;index" validate:"omitempty,email"`
	DepartmentID *int64   `json:"departmentId,omitempty" gorm:"index"`
	HireDate     string   `json:"hireDate,omitempty" gorm:"size:10" validate:"omitempty,datetime=2006-01-02"`
	Role         string   `json:"role,omitempty" gorm:"size:120"`
	Salary       *float64 `json:"salary,omitempty"`
}

func (e Employee) Key() int64 { return e.ID }

func (e Employee) Names() NameFields {
	return NameFields{Name: e.Name, FirstName: e.FirstName, LastName: e.LastName, FullName: e.FullName, Username: e.Username}
}

type CandidateStatus string

const (
	StatusApplied   CandidateStatus = "Applied"
	StatusInterview CandidateStatus = "Interview"
	StatusHired     CandidateStatus = "Hired"
	StatusRejected  CandidateStatus = "Rejected"
)

// Terminal reports whether a candidate in this status is removed on save.
func (s CandidateStatus) Terminal() bool {
	return s == StatusHired || s == StatusRejected
}

func (s CandidateStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

type Candidate struct {
	ID           int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string          `json:"name" gorm:"size:255"`
	FirstName    string          `json:"firstName,omitempty" gorm:"size:120"`
	LastName     string          `json:"lastName,omitempty" gorm:"size:120"`
	FullName     string          `json:"fullName,omitempty" gorm:"size:255"`
	Username     string          `json:"username,omitempty" gorm:"size:120"`
	Email        string          `json:"email,omitempty" gorm:"size:255" validate:"omitempty,email"`
	DepartmentID *int64          `json:"departmentId,omitempty" gorm:"index"`
	Status       CandidateStatus `json:"status" gorm:"size:20;not null" validate:"required,oneof=Applied Interview Hired Rejected"`
}

func (c Candidate) Key() int64 { return c.ID }

func (c Candidate) Names() NameFields {
	return NameFields{Name: c.Name, FirstName: c.FirstName, LastName: c.LastName, FullName: c.FullName, Username: c.Username}
}

type Company struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"size:150;not null" validate:"required"`
	Location string `json:"location,omitempty" gorm:"size:150"`
}

func (c Company) Key() int64 { return c.ID }

type Salary struct {
	ID            int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID    int64   `json:"employeeId" gorm:"index;not null" validate:"required,gt=0"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Currency      string  `json:"currency" gorm:"size:3" validate:"required,len=3,alpha"`
	EffectiveDate string  `json:"effectiveDate,omitempty" gorm:"size:10" validate:"omitempty,datetime=2006-01-02"`
}

func (s Salary) Key() int64 { return s.ID }
