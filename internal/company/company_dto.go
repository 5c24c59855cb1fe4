package company

type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required,max=150"`
	Location string `json:"location" binding:"omitempty,max=150"`
}

type UpdateCompanyRequest struct {
	Name     string `json:"name" binding:"required,max=150"`
	Location string `json:"location" binding:"omitempty,max=150"`
}
