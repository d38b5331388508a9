package service

import "errors"

// Business errors returned by the service layer. The handler maps the
// *NotFound group to 404 and everything else to 400. Message text is part
// of the API contract and must not be reworded.
var (
	ErrCustomerNotFound  = errors.New("Cliente no encontrado.")
	ErrOrderNotFound     = errors.New("Orden no encontrada.")
	ErrRemissionNotFound = errors.New("Remission no encontrada.")
	ErrSaleNotFound      = errors.New("Venta no encontrada.")
	ErrCreditNotFound    = errors.New("Crédito no encontrado.")

	// Lifecycle guards for POST /v1/remissions/:id/close
	ErrAlreadyClosed      = errors.New("La remission ya está cerrada.")
	ErrNoSales            = errors.New("No se puede cerrar una remission sin ventas.")
	ErrCreditsExceedSales = errors.New("Los créditos exceden el total vendido.")

	// Restrict-on-delete: parents cannot be removed while children exist.
	ErrCustomerHasOrders    = errors.New("No se puede eliminar un cliente con ordenes asociadas.")
	ErrOrderHasRemissions   = errors.New("No se puede eliminar una orden con remissions asociadas.")
	ErrRemissionHasChildren = errors.New("No se puede eliminar una remission con ventas o créditos asociados.")
)

// IsNotFound reports whether err belongs to the NotFound group.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrCustomerNotFound, ErrOrderNotFound, ErrRemissionNotFound,
		ErrSaleNotFound, ErrCreditNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsBusiness reports whether err is a business-rule violation whose message
// is safe to return to the client. Anything else is an infrastructure fault.
func IsBusiness(err error) bool {
	for _, target := range []error{
		ErrAlreadyClosed, ErrNoSales, ErrCreditsExceedSales,
		ErrCustomerHasOrders, ErrOrderHasRemissions, ErrRemissionHasChildren,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
