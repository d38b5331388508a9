package dto

import "github.com/shopspring/decimal"

// CreateCreditRequest is the body of POST /v1/credits. Amount must be
// strictly positive and the reason is mandatory.
type CreateCreditRequest struct {
	RemissionID string          `json:"remission_id" validate:"required,uuid"`
	Amount      decimal.Decimal `json:"amount"       validate:"required,gt=0"`
	Reason      string          `json:"reason"       validate:"required,max=255"`
}

// UpdateCreditRequest carries partial updates.
type UpdateCreditRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"omitempty,gt=0"`
	Reason *string          `json:"reason" validate:"omitempty,max=255"`
}

type CreditResponse struct {
	ID          string          `json:"id"`
	RemissionID string          `json:"remission_id"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	CreatedAt   string          `json:"created_at"`
}
