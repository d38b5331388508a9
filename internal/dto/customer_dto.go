package dto

// CreateCustomerRequest is the body of POST /v1/customers.
type CreateCustomerRequest struct {
	Name     string  `json:"name"      validate:"required,max=150"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}

// UpdateCustomerRequest carries partial updates; nil fields are untouched.
type UpdateCustomerRequest struct {
	Name     *string `json:"name"      validate:"omitempty,max=150"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}

type CustomerResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	IsActive bool    `json:"is_active"`
}
