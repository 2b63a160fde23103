package importer

import (
	"strconv"

	"service-center-import/internal/dto"
	"service-center-import/internal/loader"

	"github.com/aarondl/null/v8"
)

// Разбор строк выгрузки в типизированные записи. Обязательные числовые
// поля, которые не разбираются, делают запись непригодной (ok == false) —
// такие строки молча пропускаются, это политика импорта.

func parseUserRecord(row loader.Row) (dto.ExternalUserRecord, bool) {
	id, err := strconv.ParseInt(row.Get("userID"), 10, 64)
	if err != nil {
		return dto.ExternalUserRecord{}, false
	}
	return dto.ExternalUserRecord{
		UserID:   id,
		Fio:      row.Get("fio"),
		Phone:    row.Get("phone"),
		Login:    row.Get("login"),
		Password: row.Get("password"),
		Type:     row.Get("type"),
	}, true
}

func parseRequestRecord(row loader.Row) (dto.ExternalRequestRecord, bool) {
	id, err := strconv.ParseInt(row.Get("requestID"), 10, 64)
	if err != nil {
		return dto.ExternalRequestRecord{}, false
	}
	return dto.ExternalRequestRecord{
		RequestID:          id,
		StartDate:          row.Get("startDate"),
		HomeTechType:       row.Get("homeTechType"),
		HomeTechModel:      row.Get("homeTechModel"),
		ProblemDescription: row.Get("problemDescryption"),
		RequestStatus:      row.Get("requestStatus"),
		CompletionDate:     row.Get("completionDate"),
		MasterID:           parseOptionalInt(row.Get("masterID")),
		ClientID:           parseOptionalInt(row.Get("clientID")),
		RepairParts:        row.Get("repairParts"),
	}, true
}

func parseCommentRecord(row loader.Row) dto.ExternalCommentRecord {
	return dto.ExternalCommentRecord{
		Message:   row.Get("message"),
		MasterID:  parseOptionalInt(row.Get("masterID")),
		RequestID: parseOptionalInt(row.Get("requestID")),
	}
}

func parseOptionalInt(raw string) null.Int64 {
	if raw == "" {
		return null.NewInt64(0, false)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return null.NewInt64(0, false)
	}
	return null.Int64From(v)
}
