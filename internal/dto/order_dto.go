package dto

// CreateOrderRequest is the body of POST /v1/orders.
type CreateOrderRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	Folio      string `json:"folio"       validate:"required,max=50"`
}

// UpdateOrderRequest carries partial updates; created_at is server-owned
// and never accepted on write.
type UpdateOrderRequest struct {
	CustomerID *string `json:"customer_id" validate:"omitempty,uuid"`
	Folio      *string `json:"folio"       validate:"omitempty,max=50"`
}

type OrderResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Folio      string `json:"folio"`
	CreatedAt  string `json:"created_at"`
}
