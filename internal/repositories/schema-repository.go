package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"

	apperrors "service-center-import/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// requiredTables — таблицы, без которых импорт не имеет смысла.
// equipment_types и help_requests импортёр не наполняет, но их отсутствие
// означает, что схема целевой БД не создана целиком.
var requiredTables = []string{
	"users",
	"requests",
	"request_comments",
	"status_history",
	"equipment_types",
	"help_requests",
}

type SchemaRepositoryInterface interface {
	CheckRequiredTables(ctx context.Context) error
}

type SchemaRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSchemaRepository(storage *pgxpool.Pool, logger *zap.Logger) SchemaRepositoryInterface {
	return &SchemaRepository{storage: storage, logger: logger}
}

// CheckRequiredTables проверяет, что все обязательные таблицы существуют.
// Проверка выполняется до обработки первой строки: продолжать импорт в
// частично созданную схему нельзя.
func (r *SchemaRepository) CheckRequiredTables(ctx context.Context) error {
	rows, err := r.storage.Query(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = current_schema() AND table_name = ANY($1)`,
		requiredTables,
	)
	if err != nil {
		return fmt.Errorf("ошибка проверки схемы БД: %w", err)
	}
	defer rows.Close()

	found := make(map[string]bool, len(requiredTables))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("ошибка чтения списка таблиц: %w", err)
		}
		found[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("ошибка чтения списка таблиц: %w", err)
	}

	var missing []string
	for _, table := range requiredTables {
		if !found[table] {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s (сначала создайте схему целевой БД)",
			apperrors.ErrSchemaMissing, strings.Join(missing, ", "))
	}

	r.logger.Debug("Схема целевой БД проверена", zap.Int("tables", len(requiredTables)))
	return nil
}
