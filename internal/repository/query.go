package repository

const (
	selectCheque = `SELECT
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
	FROM cheques`

	selectInvoice = `SELECT
		id,
		invoice_number,
		total_amount,
		remaining_balance
	FROM invoices`

	selectActivity = `SELECT
		a.id,
		a.cheque_id,
		a.actor_id,
		a.action,
		a.old_state,
		a.new_state,
		a.amount,
		a.details,
		c.cheque_number,
		a.created_at
	FROM activity_log a
	JOIN cheques c ON c.id = a.cheque_id`
)

const (
	uniqueViolationCode        = "23505"
	chequeNumberConstraintName = "cheques_cheque_number_key"
)
