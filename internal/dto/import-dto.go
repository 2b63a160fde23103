// Файл: internal/dto/import-dto.go
package dto

import "github.com/aarondl/null/v8"

// Записи легаси-выгрузок. Имена колонок (включая problemDescryption с
// опечаткой) — контракт исходных файлов, менять их нельзя.

// ExternalUserRecord — строка файла inputDataUsers.csv.
type ExternalUserRecord struct {
	UserID   int64  `validate:"required"`
	Fio      string
	Phone    string
	Login    string `validate:"required"`
	Password string
	Type     string
}

// ExternalRequestRecord — строка файла inputDataRequests.csv.
// MasterID и ClientID могут отсутствовать.
type ExternalRequestRecord struct {
	RequestID          int64 `validate:"required"`
	StartDate          string
	HomeTechType       string
	HomeTechModel      string
	ProblemDescription string
	RequestStatus      string
	CompletionDate     string
	MasterID           null.Int64
	ClientID           null.Int64
	RepairParts        string
}

// ExternalCommentRecord — строка файла inputDataComments.csv.
type ExternalCommentRecord struct {
	Message   string `validate:"required"`
	MasterID  null.Int64
	RequestID null.Int64
}
