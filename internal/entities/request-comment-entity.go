package entities

type RequestComment struct {
	ID               int64  `json:"id" db:"id"`
	RequestID        int64  `json:"request_id" db:"request_id"`
	UserID           int64  `json:"user_id" db:"user_id"`
	Comment          string `json:"comment" db:"comment"`
	IsOrderedParts   bool   `json:"is_ordered_parts" db:"is_ordered_parts"`
	PartsDescription string `json:"parts_description" db:"parts_description"`
}
