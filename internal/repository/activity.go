package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/cheques/internal/entity"
	"github.com/samandr77/microservices/cheques/internal/service"
)

var _ service.ActivityRecorder = (*ActivityLog)(nil)

// ActivityLog stores activity in the activity_log table. Write failures are
// logged and dropped.
type ActivityLog struct {
	db *pgxpool.Pool
}

func NewActivityLog(pool *pgxpool.Pool) *ActivityLog {
	return &ActivityLog{db: pool}
}

func (l *ActivityLog) Record(ctx context.Context, a entity.Activity) {
	const q = `
	INSERT INTO activity_log (id, cheque_id, actor_id, action, old_state, new_state, amount, details, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := l.db.Exec(ctx, q,
		a.ID,
		a.ChequeID,
		a.ActorID,
		a.Action,
		a.OldState,
		a.NewState,
		a.Amount,
		a.Details,
		a.CreatedAt,
	)
	if err != nil {
		slog.ErrorContext(ctx, "record activity", "error", err, "cheque_id", a.ChequeID, "action", a.Action)
	}
}
