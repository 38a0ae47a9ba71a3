package entities

import "errors"

var (
	ErrResourceUnavailable      = errors.New("database unavailable")
	ErrValidation               = errors.New("validation error")
	ErrIdentifierSpaceExhausted = errors.New("failed to generate unique order number")
	ErrTransactionFailed        = errors.New("order transaction failed")
	ErrGateway                  = errors.New("payment gateway error")
	ErrCallbackFormat           = errors.New("bad callback format")

	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNumberTaken  = errors.New("order number already taken")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrStatusConflict    = errors.New("order status does not allow this operation")
)
