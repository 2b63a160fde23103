package repositories

import (
	"context"
	"fmt"

	"service-center-import/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatusHistoryRepositoryInterface interface {
	CreateStatusHistoryInTx(ctx context.Context, tx pgx.Tx, entry *entities.StatusHistory) error
}

type StatusHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewStatusHistoryRepository(storage *pgxpool.Pool) StatusHistoryRepositoryInterface {
	return &StatusHistoryRepository{storage: storage}
}

func (r *StatusHistoryRepository) CreateStatusHistoryInTx(ctx context.Context, tx pgx.Tx, entry *entities.StatusHistory) error {
	query, args, err := psql.Insert("status_history").
		Columns("request_id", "old_status", "new_status", "changed_by").
		Values(entry.RequestID, entry.OldStatus, entry.NewStatus, entry.ChangedBy).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка построения запроса вставки истории статусов: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка создания записи в 'status_history': %w", err)
	}
	return nil
}
