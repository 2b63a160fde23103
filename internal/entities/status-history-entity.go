package entities

type StatusHistory struct {
	ID        int64   `db:"id"`
	RequestID int64   `db:"request_id"`
	OldStatus *string `db:"old_status"`
	NewStatus string  `db:"new_status"`
	ChangedBy *int64  `db:"changed_by"`
}
