package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/cheques/internal/api"
	"github.com/samandr77/microservices/cheques/internal/entity"
	"github.com/samandr77/microservices/cheques/internal/mocks"
	"github.com/samandr77/microservices/cheques/internal/service"
)

const token = "dev"

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	resp := c.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestHandler_Unauthorized(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	resp := c.do(t, http.MethodGet, "/api/stats", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	c.authMock.EXPECT().User(gomock.Any(), "expired").Return(entity.User{}, entity.ErrUnauthenticated)

	resp = c.do(t, http.MethodGet, "/api/stats", "expired", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	c.authMock.EXPECT().User(gomock.Any(), "other").Return(entity.User{}, errors.New("auth service down"))

	resp = c.do(t, http.MethodGet, "/api/stats", "other", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandler_CreateCheque(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	user := c.login(entity.RoleUser)
	invoiceID := uuid.Must(uuid.NewV4())

	var created entity.Cheque

	c.serviceMock.EXPECT().CreateCheque(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req entity.NewCheque) (entity.Cheque, error) {
			got, err := entity.UserFromCtx(ctx)
			require.NoError(t, err)
			require.Equal(t, user.ID, got.ID)

			require.Equal(t, "C-100", req.ChequeNumber)
			require.Equal(t, "300.00", req.Amount.String())
			require.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), req.DueDate)
			require.Equal(t, invoiceID, *req.InvoiceID)

			created = cheque(entity.ChequeStateCreated, req.Amount, req.InvoiceID)
			created.ChequeNumber = req.ChequeNumber
			created.DueDate = req.DueDate

			return created, nil
		})

	resp := c.do(t, http.MethodPost, "/api/cheques", token, map[string]any{
		"chequeNumber": "C-100",
		"beneficiary":  "ACME S.A.",
		"bank":         "Banco Pichincha",
		"detail":       "office rent",
		"amount":       "300.00",
		"dueDate":      "2026-12-31",
		"invoiceId":    invoiceID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body api.ChequeResponse
	decode(t, resp, &body)

	require.Equal(t, created.ID, body.ID)
	require.Equal(t, "C-100", body.ChequeNumber)
	require.Equal(t, "300.00", body.Amount.String())
	require.Equal(t, entity.ChequeStateCreated, body.State)
	require.ElementsMatch(t, []entity.ChequeState{
		entity.ChequeStateReturned,
		entity.ChequeStateDeposited,
		entity.ChequeStateCancelled,
		entity.ChequeStateModified,
	}, body.AllowedStates)
	require.Equal(t, "2026-12-31", body.DueDate.Format(time.DateOnly))
}

func TestHandler_CreateCheque_BadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "malformed json", body: `{"chequeNumber":`, code: http.StatusBadRequest},
		{name: "unknown field", body: `{"number":"C-1"}`, code: http.StatusBadRequest},
		{name: "three decimals", body: `{"chequeNumber":"C-1","amount":"1.005","dueDate":"2026-01-01"}`, code: http.StatusUnprocessableEntity},
		{name: "negative amount", body: `{"chequeNumber":"C-1","amount":"-1.00","dueDate":"2026-01-01"}`, code: http.StatusUnprocessableEntity},
		{name: "invalid date", body: `{"chequeNumber":"C-1","amount":"1.00","dueDate":"2026-02-30"}`, code: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewClientAPI(t)
			c.login(entity.RoleUser)

			resp := c.doRaw(t, http.MethodPost, "/api/cheques", token, tt.body)
			require.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestHandler_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code int
	}{
		{err: entity.ErrDuplicateChequeNumber, code: http.StatusConflict},
		{err: entity.ErrExceedsInvoiceBalance, code: http.StatusConflict},
		{err: entity.ErrInvalidTransition, code: http.StatusConflict},
		{err: entity.ErrBalanceOverflow, code: http.StatusConflict},
		{err: entity.ErrAlreadyCancelled, code: http.StatusConflict},
		{err: entity.ErrInvalidAmount, code: http.StatusUnprocessableEntity},
		{err: entity.ErrInvalidArgument, code: http.StatusUnprocessableEntity},
		{err: entity.ErrInvoiceNotFound, code: http.StatusNotFound},
		{err: entity.ErrChequeNotFound, code: http.StatusNotFound},
		{err: entity.ErrForbidden, code: http.StatusForbidden},
		{err: entity.ErrStorage, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()

			c := NewClientAPI(t)
			c.login(entity.RoleUser)

			c.serviceMock.EXPECT().ChangeState(gomock.Any(), gomock.Any()).
				Return(entity.Cheque{}, fmt.Errorf("change state: %w", tt.err))

			resp := c.do(t, http.MethodPatch, "/api/cheques/"+uuid.Must(uuid.NewV4()).String(), token, map[string]any{
				"state": "deposited",
			})
			require.Equal(t, tt.code, resp.StatusCode)

			var body api.ErrorResponse
			decode(t, resp, &body)
			require.NotEmpty(t, body.Message)
			require.Contains(t, body.Description, tt.err.Error())
		})
	}
}

func TestHandler_UpdateCheque(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(entity.RoleUser)

	id := uuid.Must(uuid.NewV4())

	c.serviceMock.EXPECT().ChangeState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req service.ChangeStateRequest) (entity.Cheque, error) {
			require.Equal(t, id, req.ChequeID)
			require.Equal(t, entity.ChequeStateDeposited, req.State)
			require.Equal(t, "250.50", req.Update.Amount.String())
			require.Equal(t, "Globex", *req.Update.Beneficiary)
			require.Nil(t, req.Update.Bank)
			require.Nil(t, req.Update.DueDate)
			require.True(t, req.Update.InvoiceID.IsNil())

			ch := cheque(entity.ChequeStateDeposited, *req.Update.Amount, nil)
			ch.ID = id

			return ch, nil
		})

	resp := c.do(t, http.MethodPatch, "/api/cheques/"+id.String(), token, map[string]any{
		"state":       "deposited",
		"amount":      "250.50",
		"beneficiary": "Globex",
		"invoiceId":   uuid.Nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ChequeResponse
	decode(t, resp, &body)
	require.Equal(t, entity.ChequeStateDeposited, body.State)
	require.Equal(t, []entity.ChequeState{entity.ChequeStateCancelled}, body.AllowedStates)
	require.Nil(t, body.InvoiceID)
}

func TestHandler_Cheque(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(entity.RoleUser)

	ch := cheque(entity.ChequeStateCancelled, entity.MustMoney("10.00"), nil)

	c.serviceMock.EXPECT().Cheque(gomock.Any(), ch.ID).Return(ch, nil)

	resp := c.do(t, http.MethodGet, "/api/cheques/"+ch.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ChequeResponse
	decode(t, resp, &body)
	require.Equal(t, ch.ID, body.ID)
	require.Empty(t, body.AllowedStates)
	require.NotNil(t, body.AllowedStates)

	resp = c.do(t, http.MethodGet, "/api/cheques/not-a-uuid", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_CancelCheque(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())

	t.Run("user", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.login(entity.RoleUser)

		resp := c.do(t, http.MethodPost, "/api/cheques/"+id.String()+"/cancel", token, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.login(entity.RoleAdmin)

		ch := cheque(entity.ChequeStateCancelled, entity.MustMoney("300.00"), nil)
		ch.ID = id

		c.serviceMock.EXPECT().CancelCheque(gomock.Any(), id).Return(ch, nil)

		resp := c.do(t, http.MethodPost, "/api/cheques/"+id.String()+"/cancel", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body api.ChequeResponse
		decode(t, resp, &body)
		require.Equal(t, entity.ChequeStateCancelled, body.State)
	})

	t.Run("already cancelled", func(t *testing.T) {
		t.Parallel()

		c := NewClientAPI(t)
		c.login(entity.RoleAdmin)

		c.serviceMock.EXPECT().CancelCheque(gomock.Any(), id).Return(entity.Cheque{}, entity.ErrAlreadyCancelled)

		resp := c.do(t, http.MethodPost, "/api/cheques/"+id.String()+"/cancel", token, nil)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestHandler_ChequeHistory(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(entity.RoleUser)

	id := uuid.Must(uuid.NewV4())
	old := entity.ChequeStateCreated
	history := []entity.Activity{
		{
			ID:       uuid.Must(uuid.NewV4()),
			ChequeID: id,
			Action:   entity.ActivityCancelCheque,
			OldState: &old,
			NewState: entity.ChequeStateCancelled,
			Amount:   entity.MustMoney("300.00"),
		},
		{
			ID:       uuid.Must(uuid.NewV4()),
			ChequeID: id,
			Action:   entity.ActivityCreateCheque,
			NewState: entity.ChequeStateCreated,
			Amount:   entity.MustMoney("300.00"),
		},
	}

	c.serviceMock.EXPECT().ChequeHistory(gomock.Any(), id).Return(history, nil)

	resp := c.do(t, http.MethodGet, "/api/cheques/"+id.String()+"/history", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ChequeHistoryResponse
	decode(t, resp, &body)
	require.Equal(t, id, body.ChequeID)
	require.Len(t, body.History, 2)
	require.Equal(t, entity.ActivityCancelCheque, body.History[0].Action)
	require.Equal(t, entity.ChequeStateCreated, *body.History[0].OldState)
	require.Nil(t, body.History[1].OldState)
}

func TestHandler_Invoice(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(entity.RoleUser)

	inv := entity.Invoice{
		ID:               uuid.Must(uuid.NewV4()),
		InvoiceNumber:    "INV-1",
		TotalAmount:      entity.MustMoney("500.00"),
		RemainingBalance: entity.MustMoney("200.00"),
	}

	c.serviceMock.EXPECT().Invoice(gomock.Any(), inv.ID).Return(inv, nil)

	resp := c.do(t, http.MethodGet, "/api/invoices/"+inv.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, fmt.Sprintf(
		`{"id":%q,"invoiceNumber":"INV-1","totalAmount":"500.00","remainingBalance":"200.00"}`, inv.ID), string(raw))
}

func TestHandler_Stats(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)
	c.login(entity.RoleUser)

	c.serviceMock.EXPECT().Stats(gomock.Any()).Return(entity.ChequeStats{
		Total: 3,
		ByState: map[entity.ChequeState]int{
			entity.ChequeStateCreated:   2,
			entity.ChequeStateDeposited: 1,
		},
		TotalAmount:     entity.MustMoney("600.00"),
		DepositedAmount: entity.MustMoney("300.00"),
	}, nil)

	resp := c.do(t, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"total":3,"byState":{"created":2,"deposited":1},"totalAmount":"600.00","depositedAmount":"300.00"}`,
		string(raw))
}

func TestMiddleware_Cors(t *testing.T) {
	t.Parallel()

	c := NewClientAPI(t)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodOptions, c.url+"/api/cheques", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://cheques.example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "https://cheques.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

type ClientAPI struct {
	url         string
	authMock    *mocks.MockAuthService
	serviceMock *mocks.MockService
}

func NewClientAPI(t *testing.T) *ClientAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	authMock := mocks.NewMockAuthService(ctrl)
	serviceMock := mocks.NewMockService(ctrl)

	router := api.NewRouter(api.NewHandler(serviceMock), api.NewMiddleware(authMock, []string{"*"}))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &ClientAPI{
		url:         server.URL,
		authMock:    authMock,
		serviceMock: serviceMock,
	}
}

func (c *ClientAPI) login(role string) entity.User {
	user := entity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: "Test first name",
		LastName:  "Test last name",
		Email:     "user@example.com",
		Role:      entity.UserRole{Name: role},
	}

	c.authMock.EXPECT().User(gomock.Any(), token).Return(user, nil).AnyTimes()

	return user
}

func (c *ClientAPI) do(t *testing.T, method, path, bearer string, body any) *http.Response {
	t.Helper()

	var raw string

	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)

		raw = string(b)
	}

	return c.doRaw(t, method, path, bearer, raw)
}

func (c *ClientAPI) doRaw(t *testing.T, method, path, bearer, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, c.url+path, bytes.NewBufferString(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func cheque(state entity.ChequeState, amount entity.Money, invoiceID *uuid.UUID) entity.Cheque {
	now := time.Now().Truncate(time.Microsecond)

	return entity.Cheque{
		ID:           uuid.Must(uuid.NewV4()),
		ChequeNumber: "C-1",
		Beneficiary:  "ACME S.A.",
		Bank:         "Banco Pichincha",
		Amount:       amount,
		IssueDate:    now,
		DueDate:      time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		State:        state,
		InvoiceID:    invoiceID,
		CreatedBy:    uuid.Must(uuid.NewV4()),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
