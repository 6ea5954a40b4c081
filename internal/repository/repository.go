package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/cheques/internal/entity"
	"github.com/samandr77/microservices/cheques/internal/service"
)

var _ service.Repository = (*Repository)(nil)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// InTx runs fn in a single transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (r *Repository) InTx(ctx context.Context, fn func(ctx context.Context, tx service.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storageErr("begin transaction", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	err = fn(ctx, &Tx{tx: tx})
	if err != nil {
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return storageErr("commit transaction", err)
	}

	return nil
}

func (r *Repository) Cheque(ctx context.Context, id uuid.UUID) (entity.Cheque, error) {
	return scanCheque(r.db.QueryRow(ctx, selectCheque+" WHERE id = $1", id))
}

func (r *Repository) ChequeByNumber(ctx context.Context, number string) (entity.Cheque, error) {
	return scanCheque(r.db.QueryRow(ctx, selectCheque+" WHERE cheque_number = $1", number))
}

func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	return scanInvoice(r.db.QueryRow(ctx, selectInvoice+" WHERE id = $1", id))
}

// CreateInvoice stores an issued invoice with its full balance outstanding.
func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) error {
	const q = `
	INSERT INTO invoices (id, invoice_number, total_amount, remaining_balance)
	VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, inv.ID, inv.InvoiceNumber, inv.TotalAmount, inv.RemainingBalance)
	if err != nil {
		return storageErr("insert invoice", err)
	}

	return nil
}

func (r *Repository) InvoicesOutOfBounds(ctx context.Context) ([]entity.Invoice, error) {
	q := selectInvoice + " WHERE remaining_balance < 0 OR remaining_balance > total_amount"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, storageErr("query invoices", err)
	}

	defer rows.Close()

	var invoices []entity.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate invoices", err)
	}

	return invoices, nil
}

func (r *Repository) ChequeHistory(ctx context.Context, chequeID uuid.UUID) ([]entity.Activity, error) {
	q := selectActivity + " WHERE a.cheque_id = $1 ORDER BY a.created_at DESC, a.id"

	rows, err := r.db.Query(ctx, q, chequeID)
	if err != nil {
		return nil, storageErr("query activity", err)
	}

	defer rows.Close()

	history := make([]entity.Activity, 0)

	for rows.Next() {
		var a entity.Activity

		err = rows.Scan(
			&a.ID,
			&a.ChequeID,
			&a.ActorID,
			&a.Action,
			&a.OldState,
			&a.NewState,
			&a.Amount,
			&a.Details,
			&a.ChequeNumber,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, storageErr("scan activity", err)
		}

		history = append(history, a)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate activity", err)
	}

	return history, nil
}

func (r *Repository) ChequeStats(ctx context.Context, createdBy uuid.UUID) (entity.ChequeStats, error) {
	sql, args, err := sq.Select("state", "COUNT(*)", "COALESCE(SUM(amount), 0)").
		From("cheques").
		Where(sq.Eq{"created_by": createdBy}).
		GroupBy("state").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.ChequeStats{}, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return entity.ChequeStats{}, storageErr("query stats", err)
	}

	defer rows.Close()

	stats := entity.ChequeStats{
		ByState: make(map[entity.ChequeState]int),
	}

	for rows.Next() {
		var (
			state entity.ChequeState
			count int
			sum   entity.Money
		)

		err = rows.Scan(&state, &count, &sum)
		if err != nil {
			return entity.ChequeStats{}, storageErr("scan stats", err)
		}

		stats.Total += count
		stats.ByState[state] = count
		stats.TotalAmount = stats.TotalAmount.Add(sum)

		if state == entity.ChequeStateDeposited {
			stats.DepositedAmount = sum
		}
	}

	if err := rows.Err(); err != nil {
		return entity.ChequeStats{}, storageErr("iterate stats", err)
	}

	return stats, nil
}

// Tx implements service.Tx on top of a pgx transaction.
type Tx struct {
	tx pgx.Tx
}

var _ service.Tx = (*Tx)(nil)

func (t *Tx) ChequeNumberExists(ctx context.Context, number string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM cheques WHERE cheque_number = $1)`

	var exists bool

	err := t.tx.QueryRow(ctx, q, number).Scan(&exists)
	if err != nil {
		return false, storageErr("check cheque number", err)
	}

	return exists, nil
}

func (t *Tx) CreateCheque(ctx context.Context, c entity.Cheque) error {
	const q = `
	INSERT INTO cheques (
		id,
		cheque_number,
		beneficiary,
		bank,
		detail,
		amount,
		issue_date,
		due_date,
		state,
		invoice_id,
		created_by,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := t.tx.Exec(
		ctx,
		q,
		c.ID,
		c.ChequeNumber,
		c.Beneficiary,
		c.Bank,
		c.Detail,
		c.Amount,
		c.IssueDate,
		c.DueDate,
		c.State,
		c.InvoiceID,
		c.CreatedBy,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return storageErr("insert cheque", err)
	}

	return nil
}

func (t *Tx) ChequeForUpdate(ctx context.Context, id uuid.UUID) (entity.Cheque, error) {
	return scanCheque(t.tx.QueryRow(ctx, selectCheque+" WHERE id = $1 FOR UPDATE", id))
}

func (t *Tx) UpdateCheque(ctx context.Context, c entity.Cheque) error {
	sql, args, err := sq.Update("cheques").
		SetMap(map[string]any{
			"beneficiary": c.Beneficiary,
			"bank":        c.Bank,
			"detail":      c.Detail,
			"amount":      c.Amount,
			"due_date":    c.DueDate,
			"state":       c.State,
			"invoice_id":  c.InvoiceID,
			"updated_at":  c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return storageErr("update cheque", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrChequeNotFound
	}

	return nil
}

func (t *Tx) InvoiceForUpdate(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	return scanInvoice(t.tx.QueryRow(ctx, selectInvoice+" WHERE id = $1 FOR UPDATE", id))
}

func (t *Tx) UpdateInvoiceBalance(ctx context.Context, id uuid.UUID, balance entity.Money) error {
	const q = `UPDATE invoices SET remaining_balance = $1 WHERE id = $2`

	result, err := t.tx.Exec(ctx, q, balance, id)
	if err != nil {
		return storageErr("update invoice balance", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInvoiceNotFound
	}

	return nil
}

func scanCheque(row pgx.Row) (c entity.Cheque, err error) {
	err = row.Scan(
		&c.ID,
		&c.ChequeNumber,
		&c.Beneficiary,
		&c.Bank,
		&c.Detail,
		&c.Amount,
		&c.IssueDate,
		&c.DueDate,
		&c.State,
		&c.InvoiceID,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Cheque{}, entity.ErrChequeNotFound
		}

		return entity.Cheque{}, storageErr("scan cheque", err)
	}

	return c, nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.TotalAmount,
		&inv.RemainingBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrInvoiceNotFound
		}

		return entity.Invoice{}, storageErr("scan invoice", err)
	}

	return inv, nil
}

// storageErr wraps a driver error into entity.ErrStorage, except for a
// violation of the cheque number unique index.
func storageErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == chequeNumberConstraintName {
		return fmt.Errorf("%w: %s", entity.ErrDuplicateChequeNumber, pgErr.Detail)
	}

	return fmt.Errorf("%w: %s: %w", entity.ErrStorage, op, err)
}
