package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrStorage         = errors.New("storage error")

	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidTransition     = errors.New("invalid state transition")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrBalanceOverflow       = errors.New("balance exceeds invoice total")
	ErrDuplicateChequeNumber = errors.New("duplicate cheque number")
	ErrAlreadyCancelled      = errors.New("cheque already cancelled")

	// ErrExceedsInvoiceBalance is returned when a cheque amount is greater than
	// the remaining balance of its invoice. It matches ErrInsufficientBalance too.
	ErrExceedsInvoiceBalance = fmt.Errorf("%w: cheque amount exceeds invoice balance", ErrInsufficientBalance)

	ErrChequeNotFound  = fmt.Errorf("cheque %w", ErrNotFound)
	ErrInvoiceNotFound = fmt.Errorf("invoice %w", ErrNotFound)
)
