package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/cheques/internal/entity"
)

// Ledger owns invoice remaining balances. Each method locks the invoice row
// for the rest of tx. It does not deduplicate: calling Debit twice debits twice.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Balance returns the invoice locked for update.
func (l *Ledger) Balance(ctx context.Context, tx Tx, invoiceID uuid.UUID) (entity.Invoice, error) {
	inv, err := tx.InvoiceForUpdate(ctx, invoiceID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("lock invoice %q: %w", invoiceID, err)
	}

	return inv, nil
}

// Debit fails with entity.ErrInsufficientBalance if amount exceeds the remaining balance.
func (l *Ledger) Debit(ctx context.Context, tx Tx, invoiceID uuid.UUID, amount entity.Money) (entity.Invoice, error) {
	inv, err := l.Balance(ctx, tx, invoiceID)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err = inv.Debit(amount)
	if err != nil {
		return entity.Invoice{}, err
	}

	return l.save(ctx, tx, inv)
}

// Credit fails with entity.ErrBalanceOverflow if the balance would exceed the invoice total.
func (l *Ledger) Credit(ctx context.Context, tx Tx, invoiceID uuid.UUID, amount entity.Money) (entity.Invoice, error) {
	inv, err := l.Balance(ctx, tx, invoiceID)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err = inv.Credit(amount)
	if err != nil {
		return entity.Invoice{}, err
	}

	return l.save(ctx, tx, inv)
}

func (l *Ledger) save(ctx context.Context, tx Tx, inv entity.Invoice) (entity.Invoice, error) {
	err := tx.UpdateInvoiceBalance(ctx, inv.ID, inv.RemainingBalance)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("update invoice %q balance: %w", inv.ID, err)
	}

	return inv, nil
}
