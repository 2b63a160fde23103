// Package translate — чистые функции перевода словарей и форматов
// легаси-выгрузки в словари целевой системы. Любое значение на входе,
// включая пустое и нераспознанное, даёт определённый результат: ошибка
// в данных одной строки не должна останавливать весь импорт.
package translate

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Роли целевой системы.
const (
	RoleSpecialist     = "specialist"
	RoleQualityManager = "quality_manager"
	RoleOperator       = "operator"
)

// Статусы целевой системы.
const (
	StatusOpen       = "открыта"
	StatusInProgress = "в процессе ремонта"
	StatusCompleted  = "завершена"
)

// DateLayout — единственный допустимый формат дат в выгрузках.
const DateLayout = "2006-01-02"

// MapRole переводит тип пользователя из выгрузки в роль целевой системы.
// Нераспознанный или пустой тип превращается в specialist.
func MapRole(rusType string) string {
	switch strings.TrimSpace(rusType) {
	case "Мастер":
		return RoleSpecialist
	case "Менеджер":
		return RoleQualityManager
	case "Оператор":
		return RoleOperator
	default:
		return RoleSpecialist
	}
}

// MapStatus переводит статус заявки из выгрузки в статус целевой системы.
// Нераспознанный или пустой статус превращается в "открыта".
func MapStatus(rusStatus string) string {
	switch strings.TrimSpace(rusStatus) {
	case "Новая заявка":
		return StatusOpen
	case "В процессе ремонта":
		return StatusInProgress
	case "Готова к выдаче":
		return StatusCompleted
	default:
		return StatusOpen
	}
}

// ParseDate разбирает дату вида 2023-06-06 и возвращает метку времени
// с нулевым временем суток. Пустая или нераспознанная дата считается
// отсутствующей (ok == false) — испорченное значение в БД не попадает,
// вызывающая сторона применяет свою политику по умолчанию.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// HashPassword возвращает SHA-256 hex-дайджест пароля. Пустой пароль
// заменяется на fallback до хеширования — так делала легаси-система,
// и целевая БД хранит именно такие дайджесты.
func HashPassword(password, fallback string) string {
	if password == "" {
		password = fallback
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
