package employee

type CreateEmployeeRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"omitempty,email"`
	DepartmentID *int64   `json:"department_id" binding:"omitempty,gt=0"`
	HireDate     string   `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	Role         string   `json:"role"`
	Salary       *float64 `json:"salary" binding:"omitempty,gte=0"`
}

type UpdateEmployeeRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"omitempty,email"`
	DepartmentID *int64   `json:"department_id" binding:"omitempty,gt=0"`
	HireDate     string   `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	Role         string   `json:"role"`
	Salary       *float64 `json:"salary" binding:"omitempty,gte=0"`
}
