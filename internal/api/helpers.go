package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/cheques/internal/entity"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{Message: msgToSend}

	if originErr != nil {
		resp.Description = originErr.Error()
	}

	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", resp.Description, "status", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", resp.Description, "status", code)
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	return dec.Decode(v)
}

// sendDecodeErr reports invalid field values as 422 and malformed bodies as 400.
func sendDecodeErr(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrInvalidAmount) || errors.Is(err, entity.ErrInvalidArgument) {
		sendServiceErr(ctx, w, err, "Invalid request")
		return
	}

	SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse %s: %w", name, err)
	}

	return id, nil
}
