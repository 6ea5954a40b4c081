package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/cheques/internal/entity"
	"github.com/samandr77/microservices/cheques/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=activity.go -destination=../mocks/events.go -package=mocks

type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// ActivityEvent is the message published for every cheque activity.
type ActivityEvent struct {
	ID           uuid.UUID             `json:"id"`
	ChequeID     uuid.UUID             `json:"cheque_id"`
	ChequeNumber string                `json:"cheque_number"`
	ActorID      uuid.UUID             `json:"actor_id"`
	Action       entity.ActivityAction `json:"action"`
	OldState     *entity.ChequeState   `json:"old_state"`
	NewState     entity.ChequeState    `json:"new_state"`
	Amount       entity.Money          `json:"amount"`
	Details      string                `json:"details"`
	CreatedAt    time.Time             `json:"created_at"`
}

var _ service.ActivityRecorder = (*ActivityPublisher)(nil)

// ActivityPublisher sends activity to the broker keyed by cheque id.
type ActivityPublisher struct {
	p Publisher
}

func NewActivityPublisher(p Publisher) *ActivityPublisher {
	return &ActivityPublisher{p: p}
}

func (a *ActivityPublisher) Record(ctx context.Context, act entity.Activity) {
	err := a.p.Publish(ctx, act.ChequeID.String(), ActivityEvent{
		ID:           act.ID,
		ChequeID:     act.ChequeID,
		ChequeNumber: act.ChequeNumber,
		ActorID:      act.ActorID,
		Action:       act.Action,
		OldState:     act.OldState,
		NewState:     act.NewState,
		Amount:       act.Amount,
		Details:      act.Details,
		CreatedAt:    act.CreatedAt,
	})
	if err != nil {
		slog.ErrorContext(ctx, "publish activity", "error", err, "cheque_id", act.ChequeID, "action", act.Action)
	}
}
