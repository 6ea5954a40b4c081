package entity

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

type Invoice struct {
	ID               uuid.UUID
	InvoiceNumber    string
	TotalAmount      Money
	RemainingBalance Money
}

// Debit returns the invoice with amount taken from its remaining balance.
func (i Invoice) Debit(amount Money) (Invoice, error) {
	err := PositiveAmount(amount)
	if err != nil {
		return Invoice{}, err
	}

	balance, err := i.RemainingBalance.Sub(amount)
	if err != nil {
		return Invoice{}, fmt.Errorf("debit invoice %s: %w", i.InvoiceNumber, err)
	}

	i.RemainingBalance = balance

	return i, nil
}

// Credit returns the invoice with amount given back to its remaining balance.
// The balance never grows above the invoice total.
func (i Invoice) Credit(amount Money) (Invoice, error) {
	err := PositiveAmount(amount)
	if err != nil {
		return Invoice{}, err
	}

	balance := i.RemainingBalance.Add(amount)
	if balance.Cmp(i.TotalAmount) > 0 {
		return Invoice{}, fmt.Errorf("%w: invoice %s balance %s + %s > total %s",
			ErrBalanceOverflow, i.InvoiceNumber, i.RemainingBalance, amount, i.TotalAmount)
	}

	i.RemainingBalance = balance

	return i, nil
}

// Covers reports whether the remaining balance is enough for amount.
func (i Invoice) Covers(amount Money) bool {
	return amount.Cmp(i.RemainingBalance) <= 0
}

// BalanceInBounds reports whether 0 <= remaining balance <= total amount.
func (i Invoice) BalanceInBounds() bool {
	return !i.RemainingBalance.Decimal().IsNegative() && i.RemainingBalance.Cmp(i.TotalAmount) <= 0
}
