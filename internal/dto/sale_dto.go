package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest is the body of POST /v1/sales. Subtotal and tax are
// non-negative currency amounts with 2 fractional digits.
type CreateSaleRequest struct {
	RemissionID string          `json:"remission_id" validate:"required,uuid"`
	Subtotal    decimal.Decimal `json:"subtotal"     validate:"min=0"`
	Tax         decimal.Decimal `json:"tax"          validate:"min=0"`
}

// UpdateSaleRequest carries partial updates; the ledger recomputes from
// current rows so edits are safe.
type UpdateSaleRequest struct {
	Subtotal *decimal.Decimal `json:"subtotal" validate:"omitempty,min=0"`
	Tax      *decimal.Decimal `json:"tax"      validate:"omitempty,min=0"`
}

type SaleResponse struct {
	ID          string          `json:"id"`
	RemissionID string          `json:"remission_id"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	CreatedAt   string          `json:"created_at"`
}
