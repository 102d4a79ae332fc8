package recon

import "errors"

var (
	ErrInvalidAmount       = errors.New("deduction amount must be positive")
	ErrDepletedPO          = errors.New("purchase order balance is depleted")
	ErrInsufficientBalance = errors.New("deduction exceeds purchase order balance")
	ErrUnknownPO           = errors.New("purchase order not found")
	ErrMissingTable        = errors.New("required input table is missing")
	ErrInvalidWindowInput  = errors.New("invalid window input")
	ErrInvalidPaymentTerms = errors.New("invalid payment terms")
)
