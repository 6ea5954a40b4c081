package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/cheques/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

// Repository is the datastore used by Service. All mutations happen through
// the Tx passed to InTx, which commits only when fn returns nil.
type Repository interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Cheque(ctx context.Context, id uuid.UUID) (entity.Cheque, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	ChequeHistory(ctx context.Context, chequeID uuid.UUID) ([]entity.Activity, error)
	ChequeStats(ctx context.Context, createdBy uuid.UUID) (entity.ChequeStats, error)
	InvoicesOutOfBounds(ctx context.Context) ([]entity.Invoice, error)
}

// Tx is a single datastore transaction. The *ForUpdate methods hold a row
// lock until the transaction ends.
type Tx interface {
	ChequeNumberExists(ctx context.Context, number string) (bool, error)
	CreateCheque(ctx context.Context, c entity.Cheque) error
	ChequeForUpdate(ctx context.Context, id uuid.UUID) (entity.Cheque, error)
	UpdateCheque(ctx context.Context, c entity.Cheque) error
	InvoiceForUpdate(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	UpdateInvoiceBalance(ctx context.Context, id uuid.UUID, balance entity.Money) error
}

// ActivityRecorder receives audit events. It must not fail the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, a entity.Activity)
}

type Service struct {
	repo     Repository
	ledger   *Ledger
	recorder ActivityRecorder
}

func New(repo Repository, recorder ActivityRecorder) *Service {
	return &Service{
		repo:     repo,
		ledger:   NewLedger(),
		recorder: recorder,
	}
}

type ChangeStateRequest struct {
	ChequeID uuid.UUID
	State    entity.ChequeState
	Update   entity.ChequeUpdate
}

// CreateCheque registers a cheque in the created state. A linked invoice must
// cover the amount, but nothing is debited until the cheque is deposited.
func (s *Service) CreateCheque(ctx context.Context, req entity.NewCheque) (entity.Cheque, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Cheque{}, err
	}

	err = req.Validate()
	if err != nil {
		return entity.Cheque{}, fmt.Errorf("validate cheque: %w", err)
	}

	now := timestamp()

	c := entity.Cheque{
		ID:           uuid.Must(uuid.NewV4()),
		ChequeNumber: req.ChequeNumber,
		Beneficiary:  req.Beneficiary,
		Bank:         req.Bank,
		Detail:       req.Detail,
		Amount:       req.Amount,
		IssueDate:    now,
		DueDate:      req.DueDate,
		State:        entity.ChequeStateCreated,
		CreatedBy:    user.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if req.InvoiceID != nil && !req.InvoiceID.IsNil() {
		invoiceID := *req.InvoiceID
		c.InvoiceID = &invoiceID
	}

	err = s.repo.InTx(ctx, func(ctx context.Context, tx Tx) error {
		exists, err := tx.ChequeNumberExists(ctx, c.ChequeNumber)
		if err != nil {
			return fmt.Errorf("check cheque number %q: %w", c.ChequeNumber, err)
		}

		if exists {
			return fmt.Errorf("%w: %q", entity.ErrDuplicateChequeNumber, c.ChequeNumber)
		}

		if c.HasInvoice() {
			inv, err := s.ledger.Balance(ctx, tx, *c.InvoiceID)
			if err != nil {
				return err
			}

			if !inv.Covers(c.Amount) {
				return fmt.Errorf("%w: cheque %s amount %s, invoice %s balance %s",
					entity.ErrExceedsInvoiceBalance, c.ChequeNumber, c.Amount, inv.InvoiceNumber, inv.RemainingBalance)
			}
		}

		err = tx.CreateCheque(ctx, c)
		if err != nil {
			return fmt.Errorf("create cheque %q: %w", c.ChequeNumber, err)
		}

		return nil
	})
	if err != nil {
		return entity.Cheque{}, err
	}

	s.recorder.Record(ctx, entity.Activity{
		ID:           uuid.Must(uuid.NewV4()),
		ChequeID:     c.ID,
		ActorID:      user.ID,
		Action:       entity.ActivityCreateCheque,
		NewState:     c.State,
		Amount:       c.Amount,
		Details:      fmt.Sprintf("Cheque %s created, beneficiary %s, amount %s", c.ChequeNumber, c.Beneficiary, c.Amount),
		ChequeNumber: c.ChequeNumber,
		CreatedAt:    now,
	})

	slog.InfoContext(ctx, "cheque created", "cheque_id", c.ID, "cheque_number", c.ChequeNumber, "amount", c.Amount.String())

	return c, nil
}

// ChangeState moves a cheque to req.State and applies req.Update in the same
// transaction, debiting or crediting the linked invoice as required.
func (s *Service) ChangeState(ctx context.Context, req ChangeStateRequest) (entity.Cheque, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Cheque{}, err
	}

	err = req.State.Validate()
	if err != nil {
		return entity.Cheque{}, err
	}

	err = req.Update.Validate()
	if err != nil {
		return entity.Cheque{}, fmt.Errorf("validate update: %w", err)
	}

	var prev, next entity.Cheque

	err = s.repo.InTx(ctx, func(ctx context.Context, tx Tx) error {
		prev, err = tx.ChequeForUpdate(ctx, req.ChequeID)
		if err != nil {
			return fmt.Errorf("lock cheque %q: %w", req.ChequeID, err)
		}

		next, err = s.transition(ctx, tx, prev, req.State, req.Update)

		return err
	})
	if err != nil {
		return entity.Cheque{}, err
	}

	s.record(ctx, user, entity.ActivityEditCheque, prev, next)

	return next, nil
}

// CancelCheque voids a cheque, restoring the invoice balance if it was deposited.
// Callers are responsible for checking that the principal may cancel cheques.
func (s *Service) CancelCheque(ctx context.Context, id uuid.UUID) (entity.Cheque, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Cheque{}, err
	}

	var prev, next entity.Cheque

	err = s.repo.InTx(ctx, func(ctx context.Context, tx Tx) error {
		prev, err = tx.ChequeForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock cheque %q: %w", id, err)
		}

		if prev.State == entity.ChequeStateCancelled {
			return fmt.Errorf("cheque %s: %w", prev.ChequeNumber, entity.ErrAlreadyCancelled)
		}

		next, err = s.transition(ctx, tx, prev, entity.ChequeStateCancelled, entity.ChequeUpdate{})

		return err
	})
	if err != nil {
		return entity.Cheque{}, err
	}

	s.record(ctx, user, entity.ActivityCancelCheque, prev, next)

	return next, nil
}

// transition must run inside tx with cur already locked.
func (s *Service) transition(
	ctx context.Context,
	tx Tx,
	cur entity.Cheque,
	to entity.ChequeState,
	upd entity.ChequeUpdate,
) (entity.Cheque, error) {
	if !entity.CanTransition(cur.State, to) {
		return entity.Cheque{}, fmt.Errorf("%w: cheque %s from %q to %q",
			entity.ErrInvalidTransition, cur.ChequeNumber, cur.State, to)
	}

	next := upd.Apply(cur)
	next.State = to
	next.UpdatedAt = timestamp()

	// Leaving deposited gives the original amount back to the original invoice.
	if cur.State == entity.ChequeStateDeposited && cur.HasInvoice() {
		_, err := s.ledger.Credit(ctx, tx, *cur.InvoiceID, cur.Amount)
		if err != nil {
			return entity.Cheque{}, fmt.Errorf("restore balance for cheque %s: %w", cur.ChequeNumber, err)
		}
	}

	switch {
	case to == entity.ChequeStateDeposited && next.HasInvoice():
		_, err := s.ledger.Debit(ctx, tx, *next.InvoiceID, next.Amount)
		if errors.Is(err, entity.ErrInsufficientBalance) {
			return entity.Cheque{}, fmt.Errorf("%w: cheque %s amount %s", entity.ErrExceedsInvoiceBalance, next.ChequeNumber, next.Amount)
		}

		if err != nil {
			return entity.Cheque{}, fmt.Errorf("deposit cheque %s: %w", next.ChequeNumber, err)
		}

	case next.HasInvoice() && !sameInvoice(cur, next):
		_, err := s.ledger.Balance(ctx, tx, *next.InvoiceID)
		if err != nil {
			return entity.Cheque{}, fmt.Errorf("link cheque %s: %w", next.ChequeNumber, err)
		}
	}

	err := tx.UpdateCheque(ctx, next)
	if err != nil {
		return entity.Cheque{}, fmt.Errorf("update cheque %s: %w", next.ChequeNumber, err)
	}

	return next, nil
}

func (s *Service) record(ctx context.Context, user entity.User, action entity.ActivityAction, prev, next entity.Cheque) {
	oldState := prev.State

	s.recorder.Record(ctx, entity.Activity{
		ID:       uuid.Must(uuid.NewV4()),
		ChequeID: next.ID,
		ActorID:  user.ID,
		Action:   action,
		OldState: &oldState,
		NewState: next.State,
		Amount:   next.Amount,
		Details: fmt.Sprintf("Cheque %s: %s -> %s, amount %s",
			next.ChequeNumber, prev.State, next.State, next.Amount),
		ChequeNumber: next.ChequeNumber,
		CreatedAt:    next.UpdatedAt,
	})

	slog.InfoContext(ctx, "cheque state changed",
		"cheque_id", next.ID,
		"action", action,
		"old_state", prev.State,
		"new_state", next.State,
		"amount", next.Amount.String(),
	)
}

func (s *Service) Cheque(ctx context.Context, id uuid.UUID) (entity.Cheque, error) {
	c, err := s.repo.Cheque(ctx, id)
	if err != nil {
		return entity.Cheque{}, fmt.Errorf("get cheque %q: %w", id, err)
	}

	return c, nil
}

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %q: %w", id, err)
	}

	return inv, nil
}

// ChequeHistory returns the activity of a cheque, newest first.
func (s *Service) ChequeHistory(ctx context.Context, chequeID uuid.UUID) ([]entity.Activity, error) {
	_, err := s.repo.Cheque(ctx, chequeID)
	if err != nil {
		return nil, fmt.Errorf("get cheque %q: %w", chequeID, err)
	}

	history, err := s.repo.ChequeHistory(ctx, chequeID)
	if err != nil {
		return nil, fmt.Errorf("get cheque %q history: %w", chequeID, err)
	}

	return history, nil
}

// Stats summarizes the cheques created by the current principal.
func (s *Service) Stats(ctx context.Context) (entity.ChequeStats, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.ChequeStats{}, err
	}

	stats, err := s.repo.ChequeStats(ctx, user.ID)
	if err != nil {
		return entity.ChequeStats{}, fmt.Errorf("get user %s stats: %w", user, err)
	}

	return stats, nil
}

// AuditInvoiceBalances logs every invoice whose balance left [0, total].
func (s *Service) AuditInvoiceBalances(ctx context.Context) error {
	invoices, err := s.repo.InvoicesOutOfBounds(ctx)
	if err != nil {
		return fmt.Errorf("find invoices out of bounds: %w", err)
	}

	for _, inv := range invoices {
		slog.ErrorContext(ctx, "invoice balance out of bounds",
			"invoice_id", inv.ID,
			"invoice_number", inv.InvoiceNumber,
			"remaining_balance", inv.RemainingBalance.String(),
			"total_amount", inv.TotalAmount.String(),
		)
	}

	return nil
}

func sameInvoice(a, b entity.Cheque) bool {
	if !a.HasInvoice() || !b.HasInvoice() {
		return a.HasInvoice() == b.HasInvoice()
	}

	return *a.InvoiceID == *b.InvoiceID
}

// timestamp is truncated to the datastore's precision.
func timestamp() time.Time {
	return time.Now().Truncate(time.Microsecond)
}
