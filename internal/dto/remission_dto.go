package dto

import "github.com/shopspring/decimal"

// CreateRemissionRequest is the body of POST /v1/remissions. Status is not
// accepted: every remission starts open and only Close moves it forward.
type CreateRemissionRequest struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
	Folio   string `json:"folio"    validate:"required,max=50"`
}

// UpdateRemissionRequest carries partial updates. Status is deliberately
// absent — the lifecycle owns that field.
type UpdateRemissionRequest struct {
	OrderID *string `json:"order_id" validate:"omitempty,uuid"`
	Folio   *string `json:"folio"    validate:"omitempty,max=50"`
}

type RemissionResponse struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Folio     string `json:"folio"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// CloseResponse confirms a successful close.
type CloseResponse struct {
	Message string `json:"message"`
}

// SummaryResponse is the ledger view of a remission: decimal sums over its
// sales and credits plus the derived balance.
type SummaryResponse struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	SalesCount   int             `json:"sales_count"`
	Balance      decimal.Decimal `json:"balance"`
}
