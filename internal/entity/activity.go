package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type ActivityAction string

const (
	ActivityCreateCheque ActivityAction = "create_cheque"
	ActivityEditCheque   ActivityAction = "edit_cheque"
	ActivityCancelCheque ActivityAction = "cancel_cheque"
)

// Activity is an audit record of a single cheque operation.
type Activity struct {
	ID       uuid.UUID
	ChequeID uuid.UUID
	ActorID  uuid.UUID
	Action   ActivityAction
	OldState *ChequeState // nil on creation
	NewState ChequeState
	Amount   Money
	Details  string
	// ChequeNumber is denormalized for consumers of the event stream.
	ChequeNumber string
	CreatedAt    time.Time
}
