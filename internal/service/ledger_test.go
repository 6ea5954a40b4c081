package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/cheques/internal/entity"
	"github.com/samandr77/microservices/cheques/internal/mocks"
	"github.com/samandr77/microservices/cheques/internal/service"
)

func TestLedger_Debit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTx(ctrl)
	ctx := context.Background()
	inv := invoice("500.00", "500.00")

	tx.EXPECT().InvoiceForUpdate(ctx, inv.ID).Return(inv, nil)
	tx.EXPECT().UpdateInvoiceBalance(ctx, inv.ID, moneyEq("199.99")).Return(nil)

	got, err := service.NewLedger().Debit(ctx, tx, inv.ID, entity.MustMoney("300.01"))
	require.NoError(t, err)
	require.Equal(t, "199.99", got.RemainingBalance.String())
	require.Equal(t, "500.00", got.TotalAmount.String())
}

func TestLedger_Debit_Insufficient(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTx(ctrl)
	ctx := context.Background()
	inv := invoice("500.00", "200.00")

	tx.EXPECT().InvoiceForUpdate(ctx, inv.ID).Return(inv, nil)

	_, err := service.NewLedger().Debit(ctx, tx, inv.ID, entity.MustMoney("200.01"))
	require.ErrorIs(t, err, entity.ErrInsufficientBalance)
}

func TestLedger_Debit_InvalidAmount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTx(ctrl)
	ctx := context.Background()
	inv := invoice("500.00", "200.00")

	tx.EXPECT().InvoiceForUpdate(ctx, inv.ID).Return(inv, nil)

	_, err := service.NewLedger().Debit(ctx, tx, inv.ID, entity.MustMoney("0.00"))
	require.ErrorIs(t, err, entity.ErrInvalidAmount)
}

func TestLedger_Credit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTx(ctrl)
	ctx := context.Background()
	inv := invoice("500.00", "200.00")

	tx.EXPECT().InvoiceForUpdate(ctx, inv.ID).Return(inv, nil)
	tx.EXPECT().UpdateInvoiceBalance(ctx, inv.ID, moneyEq("500.00")).Return(nil)

	got, err := service.NewLedger().Credit(ctx, tx, inv.ID, entity.MustMoney("300.00"))
	require.NoError(t, err)
	require.Equal(t, "500.00", got.RemainingBalance.String())
}

func TestLedger_Credit_Overflow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTx(ctrl)
	ctx := context.Background()
	inv := invoice("500.00", "400.00")

	tx.EXPECT().InvoiceForUpdate(ctx, inv.ID).Return(inv, nil)

	_, err := service.NewLedger().Credit(ctx, tx, inv.ID, entity.MustMoney("100.01"))
	require.ErrorIs(t, err, entity.ErrBalanceOverflow)
}

func TestLedger_Balance_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tx := mocks.NewMockTx(ctrl)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	tx.EXPECT().InvoiceForUpdate(ctx, id).Return(entity.Invoice{}, entity.ErrInvoiceNotFound)

	_, err := service.NewLedger().Balance(ctx, tx, id)
	require.ErrorIs(t, err, entity.ErrInvoiceNotFound)
}
