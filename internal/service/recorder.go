package service

import (
	"context"

	"github.com/samandr77/microservices/cheques/internal/entity"
)

// Recorders fans an activity out to several recorders in order.
type Recorders []ActivityRecorder

func (r Recorders) Record(ctx context.Context, a entity.Activity) {
	for _, rec := range r {
		rec.Record(ctx, a)
	}
}
