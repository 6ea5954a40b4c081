package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/cheques/internal/entity"
	"github.com/samandr77/microservices/cheques/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	CreateCheque(ctx context.Context, req entity.NewCheque) (entity.Cheque, error)
	ChangeState(ctx context.Context, req service.ChangeStateRequest) (entity.Cheque, error)
	CancelCheque(ctx context.Context, id uuid.UUID) (entity.Cheque, error)
	Cheque(ctx context.Context, id uuid.UUID) (entity.Cheque, error)
	ChequeHistory(ctx context.Context, chequeID uuid.UUID) ([]entity.Activity, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Stats(ctx context.Context) (entity.ChequeStats, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// Date is a calendar date encoded as "2006-01-02".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	t, err := time.Parse(`"`+time.DateOnly+`"`, string(b))
	if err != nil {
		return errors.Join(entity.ErrInvalidArgument, err)
	}

	d.Time = t

	return nil
}

type ChequeResponse struct {
	ID            uuid.UUID            `json:"id"`
	ChequeNumber  string               `json:"chequeNumber"`
	Beneficiary   string               `json:"beneficiary"`
	Bank          string               `json:"bank"`
	Detail        string               `json:"detail"`
	Amount        entity.Money         `json:"amount"`
	IssueDate     time.Time            `json:"issueDate"`
	DueDate       Date                 `json:"dueDate"`
	State         entity.ChequeState   `json:"state"`
	AllowedStates []entity.ChequeState `json:"allowedStates"`
	InvoiceID     *uuid.UUID           `json:"invoiceId"`
	CreatedBy     uuid.UUID            `json:"createdBy"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func newChequeResponse(c entity.Cheque) ChequeResponse {
	return ChequeResponse{
		ID:            c.ID,
		ChequeNumber:  c.ChequeNumber,
		Beneficiary:   c.Beneficiary,
		Bank:          c.Bank,
		Detail:        c.Detail,
		Amount:        c.Amount,
		IssueDate:     c.IssueDate,
		DueDate:       Date{c.DueDate},
		State:         c.State,
		AllowedStates: c.State.AllowedTransitions(),
		InvoiceID:     c.InvoiceID,
		CreatedBy:     c.CreatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type CreateChequeRequest struct {
	ChequeNumber string       `json:"chequeNumber"`
	Beneficiary  string       `json:"beneficiary"`
	Bank         string       `json:"bank"`
	Detail       string       `json:"detail"`
	Amount       entity.Money `json:"amount"`
	DueDate      Date         `json:"dueDate"`
	InvoiceID    *uuid.UUID   `json:"invoiceId"`
}

// CreateCheque registers a new cheque in the created state.
func (h *Handler) CreateCheque(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateChequeRequest

	err := decodeJSON(r, &req)
	if err != nil {
		sendDecodeErr(ctx, w, err)
		return
	}

	c, err := h.s.CreateCheque(ctx, entity.NewCheque{
		ChequeNumber: req.ChequeNumber,
		Beneficiary:  req.Beneficiary,
		Bank:         req.Bank,
		Detail:       req.Detail,
		Amount:       req.Amount,
		DueDate:      req.DueDate.Time,
		InvoiceID:    req.InvoiceID,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create cheque")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newChequeResponse(c))
}

func (h *Handler) Cheque(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid cheque id")
		return
	}

	c, err := h.s.Cheque(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get cheque")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newChequeResponse(c))
}

// UpdateChequeRequest moves a cheque to State and applies the non-null fields.
// An all-zero invoiceId detaches the cheque from its invoice.
type UpdateChequeRequest struct {
	State       entity.ChequeState `json:"state"`
	Beneficiary *string            `json:"beneficiary"`
	Bank        *string            `json:"bank"`
	Detail      *string            `json:"detail"`
	Amount      *entity.Money      `json:"amount"`
	DueDate     *Date              `json:"dueDate"`
	InvoiceID   *uuid.UUID         `json:"invoiceId"`
}

func (h *Handler) UpdateCheque(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid cheque id")
		return
	}

	var req UpdateChequeRequest

	err = decodeJSON(r, &req)
	if err != nil {
		sendDecodeErr(ctx, w, err)
		return
	}

	upd := entity.ChequeUpdate{
		Beneficiary: req.Beneficiary,
		Bank:        req.Bank,
		Detail:      req.Detail,
		Amount:      req.Amount,
		InvoiceID:   req.InvoiceID,
	}

	if req.DueDate != nil {
		upd.DueDate = &req.DueDate.Time
	}

	c, err := h.s.ChangeState(ctx, service.ChangeStateRequest{
		ChequeID: id,
		State:    req.State,
		Update:   upd,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to update cheque")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newChequeResponse(c))
}

// CancelCheque voids a cheque. Only administrators may call it.
func (h *Handler) CancelCheque(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid cheque id")
		return
	}

	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to cancel cheque")
		return
	}

	if !user.IsAdmin() {
		SendJSONErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, "Only administrators can cancel cheques")
		return
	}

	c, err := h.s.CancelCheque(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to cancel cheque")
		return
	}

	SendJSON(ctx, w, http.StatusOK, newChequeResponse(c))
}

type ActivityResponse struct {
	ID        uuid.UUID             `json:"id"`
	ActorID   uuid.UUID             `json:"actorId"`
	Action    entity.ActivityAction `json:"action"`
	OldState  *entity.ChequeState   `json:"oldState"`
	NewState  entity.ChequeState    `json:"newState"`
	Amount    entity.Money          `json:"amount"`
	Details   string                `json:"details"`
	CreatedAt time.Time             `json:"createdAt"`
}

type ChequeHistoryResponse struct {
	ChequeID uuid.UUID          `json:"chequeId"`
	History  []ActivityResponse `json:"history"`
}

func (h *Handler) ChequeHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid cheque id")
		return
	}

	history, err := h.s.ChequeHistory(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get cheque history")
		return
	}

	resp := ChequeHistoryResponse{
		ChequeID: id,
		History:  make([]ActivityResponse, 0, len(history)),
	}

	for _, a := range history {
		resp.History = append(resp.History, ActivityResponse{
			ID:        a.ID,
			ActorID:   a.ActorID,
			Action:    a.Action,
			OldState:  a.OldState,
			NewState:  a.NewState,
			Amount:    a.Amount,
			Details:   a.Details,
			CreatedAt: a.CreatedAt,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type InvoiceResponse struct {
	ID               uuid.UUID    `json:"id"`
	InvoiceNumber    string       `json:"invoiceNumber"`
	TotalAmount      entity.Money `json:"totalAmount"`
	RemainingBalance entity.Money `json:"remainingBalance"`
}

func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	inv, err := h.s.Invoice(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, InvoiceResponse{
		ID:               inv.ID,
		InvoiceNumber:    inv.InvoiceNumber,
		TotalAmount:      inv.TotalAmount,
		RemainingBalance: inv.RemainingBalance,
	})
}

type StatsResponse struct {
	Total           int                        `json:"total"`
	ByState         map[entity.ChequeState]int `json:"byState"`
	TotalAmount     entity.Money               `json:"totalAmount"`
	DepositedAmount entity.Money               `json:"depositedAmount"`
}

// Stats summarizes the cheques of the current user.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.Stats(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get stats")
		return
	}

	SendJSON(ctx, w, http.StatusOK, StatsResponse{
		Total:           stats.Total,
		ByState:         stats.ByState,
		TotalAmount:     stats.TotalAmount,
		DepositedAmount: stats.DepositedAmount,
	})
}

// HealthHandler - returns service health status.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is unavailable")
		return
	}
}

func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrInvalidAmount):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid amount")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid request")
	case errors.Is(err, entity.ErrChequeNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Cheque not found")
	case errors.Is(err, entity.ErrInvoiceNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Invoice not found")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrInvalidTransition):
		SendJSONErr(ctx, w, http.StatusConflict, err, "State transition is not allowed")
	case errors.Is(err, entity.ErrExceedsInvoiceBalance), errors.Is(err, entity.ErrInsufficientBalance):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Cheque amount exceeds invoice balance")
	case errors.Is(err, entity.ErrBalanceOverflow):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Invoice balance would exceed its total")
	case errors.Is(err, entity.ErrDuplicateChequeNumber):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Cheque number already exists")
	case errors.Is(err, entity.ErrAlreadyCancelled):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Cheque is already cancelled")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Action forbidden for user")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Authentication required")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, fallback)
	}
}
