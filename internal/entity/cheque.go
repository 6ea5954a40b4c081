package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
)

type ChequeState string

const (
	ChequeStateCreated   ChequeState = "created"   // issued, not reconciled yet
	ChequeStateDeposited ChequeState = "deposited" // funds applied, invoice debited
	ChequeStateReturned  ChequeState = "returned"  // bounced, not redeposited yet
	ChequeStateCancelled ChequeState = "cancelled" // voided, terminal
	ChequeStateModified  ChequeState = "modified"  // edited before deposit
)

// chequeTransitions lists the legal target states for every state.
// A state is never a legal target of itself.
var chequeTransitions = map[ChequeState][]ChequeState{
	ChequeStateCreated:   {ChequeStateReturned, ChequeStateDeposited, ChequeStateCancelled, ChequeStateModified},
	ChequeStateReturned:  {ChequeStateDeposited, ChequeStateCancelled},
	ChequeStateDeposited: {ChequeStateCancelled},
	ChequeStateCancelled: {},
	ChequeStateModified:  {ChequeStateReturned, ChequeStateDeposited, ChequeStateCancelled},
}

func (s ChequeState) String() string {
	return string(s)
}

func (s ChequeState) Validate() error {
	if _, ok := chequeTransitions[s]; !ok {
		return fmt.Errorf("%w: unknown cheque state %q", ErrInvalidArgument, s)
	}

	return nil
}

func (s ChequeState) IsTerminal() bool {
	return len(chequeTransitions[s]) == 0
}

// AllowedTransitions returns a copy of the states reachable from s.
func (s ChequeState) AllowedTransitions() []ChequeState {
	return slices.Clone(chequeTransitions[s])
}

// CanTransition reports whether a cheque may move from one state to another.
func CanTransition(from, to ChequeState) bool {
	return slices.Contains(chequeTransitions[from], to)
}

type Cheque struct {
	ID           uuid.UUID
	ChequeNumber string
	Beneficiary  string
	Bank         string
	Detail       string
	Amount       Money
	IssueDate    time.Time
	DueDate      time.Time
	State        ChequeState
	InvoiceID    *uuid.UUID
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasInvoice reports whether the cheque is linked to an invoice.
func (c Cheque) HasInvoice() bool {
	return c.InvoiceID != nil && !c.InvoiceID.IsNil()
}

// ChequeUpdate holds the editable fields of a cheque. Nil fields are left unchanged.
// InvoiceID set to uuid.Nil detaches the cheque from its invoice.
type ChequeUpdate struct {
	Beneficiary *string
	Bank        *string
	Detail      *string
	Amount      *Money
	DueDate     *time.Time
	InvoiceID   *uuid.UUID
}

// Apply returns a copy of c with the update applied.
func (u ChequeUpdate) Apply(c Cheque) Cheque {
	if u.Beneficiary != nil {
		c.Beneficiary = *u.Beneficiary
	}

	if u.Bank != nil {
		c.Bank = *u.Bank
	}

	if u.Detail != nil {
		c.Detail = *u.Detail
	}

	if u.Amount != nil {
		c.Amount = *u.Amount
	}

	if u.DueDate != nil {
		c.DueDate = *u.DueDate
	}

	if u.InvoiceID != nil {
		if u.InvoiceID.IsNil() {
			c.InvoiceID = nil
		} else {
			id := *u.InvoiceID
			c.InvoiceID = &id
		}
	}

	return c
}

// Validate checks the caller-supplied update values.
func (u ChequeUpdate) Validate() error {
	if u.Beneficiary != nil && *u.Beneficiary == "" {
		return fmt.Errorf("%w: beneficiary is empty", ErrInvalidArgument)
	}

	if u.Bank != nil && *u.Bank == "" {
		return fmt.Errorf("%w: bank is empty", ErrInvalidArgument)
	}

	if u.Amount != nil {
		err := PositiveAmount(*u.Amount)
		if err != nil {
			return err
		}
	}

	if u.DueDate != nil && u.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is empty", ErrInvalidArgument)
	}

	return nil
}

// NewCheque holds the caller-supplied fields of a cheque being registered.
type NewCheque struct {
	ChequeNumber string
	Beneficiary  string
	Bank         string
	Detail       string
	Amount       Money
	DueDate      time.Time
	InvoiceID    *uuid.UUID
}

func (n NewCheque) Validate() error {
	if n.ChequeNumber == "" {
		return fmt.Errorf("%w: cheque number is empty", ErrInvalidArgument)
	}

	if n.Beneficiary == "" {
		return fmt.Errorf("%w: beneficiary is empty", ErrInvalidArgument)
	}

	if n.Bank == "" {
		return fmt.Errorf("%w: bank is empty", ErrInvalidArgument)
	}

	if n.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is empty", ErrInvalidArgument)
	}

	return PositiveAmount(n.Amount)
}

// ChequeStats is a per-principal dashboard summary.
type ChequeStats struct {
	Total           int
	ByState         map[ChequeState]int
	TotalAmount     Money
	DepositedAmount Money
}
