package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/cheques/internal/entity"
)

func TestInvoice_DebitCredit(t *testing.T) {
	t.Parallel()

	inv := entity.Invoice{
		InvoiceNumber:    "INV-1",
		TotalAmount:      entity.MustMoney("500.00"),
		RemainingBalance: entity.MustMoney("500.00"),
	}

	debited, err := inv.Debit(entity.MustMoney("300.00"))
	require.NoError(t, err)
	require.Equal(t, "200.00", debited.RemainingBalance.String())
	require.True(t, debited.BalanceInBounds())

	_, err = debited.Debit(entity.MustMoney("300.00"))
	require.ErrorIs(t, err, entity.ErrInsufficientBalance)

	credited, err := debited.Credit(entity.MustMoney("300.00"))
	require.NoError(t, err)
	require.True(t, credited.RemainingBalance.Equal(inv.RemainingBalance))

	_, err = credited.Credit(entity.MustMoney("0.01"))
	require.ErrorIs(t, err, entity.ErrBalanceOverflow)
}

func TestInvoice_RejectsNonPositive(t *testing.T) {
	t.Parallel()

	inv := entity.Invoice{
		TotalAmount:      entity.MustMoney("10.00"),
		RemainingBalance: entity.MustMoney("5.00"),
	}

	_, err := inv.Debit(entity.Money{})
	require.ErrorIs(t, err, entity.ErrInvalidAmount)

	_, err = inv.Credit(entity.Money{})
	require.ErrorIs(t, err, entity.ErrInvalidAmount)
}

func TestInvoice_Covers(t *testing.T) {
	t.Parallel()

	inv := entity.Invoice{RemainingBalance: entity.MustMoney("200.00")}

	require.True(t, inv.Covers(entity.MustMoney("200.00")))
	require.False(t, inv.Covers(entity.MustMoney("200.01")))
}

func TestInvoice_BalanceInBounds(t *testing.T) {
	t.Parallel()

	var negative entity.Money

	require.NoError(t, negative.Scan("-1.00"))

	require.False(t, entity.Invoice{TotalAmount: entity.MustMoney("10.00"), RemainingBalance: negative}.BalanceInBounds())
	require.False(t, entity.Invoice{
		TotalAmount:      entity.MustMoney("10.00"),
		RemainingBalance: entity.MustMoney("10.01"),
	}.BalanceInBounds())
	require.True(t, entity.Invoice{
		TotalAmount:      entity.MustMoney("10.00"),
		RemainingBalance: entity.MustMoney("0"),
	}.BalanceInBounds())
}
