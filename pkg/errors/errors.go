package errors

import "fmt"

var (
	// Схема целевой БД
	ErrSchemaMissing = fmt.Errorf("в целевой БД отсутствуют обязательные таблицы")

	// Общие
	ErrNotFound = fmt.Errorf("запись не найдена")
)
