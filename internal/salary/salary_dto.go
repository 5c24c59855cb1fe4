package salary

// DefaultCurrency applies when a request leaves currency blank.
const DefaultCurrency = "USD"

type CreateSalaryRequest struct {
	EmployeeID    int64   `json:"employee_id" binding:"required,gt=0"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	Currency      string  `json:"currency" binding:"omitempty,len=3,alpha"`
	EffectiveDate string  `json:"effective_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateSalaryRequest struct {
	EmployeeID    int64   `json:"employee_id" binding:"required,gt=0"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	Currency      string  `json:"currency" binding:"omitempty,len=3,alpha"`
	EffectiveDate string  `json:"effective_date" binding:"omitempty,datetime=2006-01-02"`
}
