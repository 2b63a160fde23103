package repositories

import (
	"context"
	"fmt"

	"service-center-import/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepositoryInterface interface {
	CreateCommentInTx(ctx context.Context, tx pgx.Tx, comment *entities.RequestComment) error
	CommentExistsInTx(ctx context.Context, tx pgx.Tx, comment *entities.RequestComment) (bool, error)
}

type CommentRepository struct {
	storage *pgxpool.Pool
}

func NewCommentRepository(storage *pgxpool.Pool) CommentRepositoryInterface {
	return &CommentRepository{storage: storage}
}

func (r *CommentRepository) CreateCommentInTx(ctx context.Context, tx pgx.Tx, comment *entities.RequestComment) error {
	query, args, err := psql.Insert("request_comments").
		Columns("request_id", "user_id", "comment", "is_ordered_parts", "parts_description").
		Values(comment.RequestID, comment.UserID, comment.Comment, comment.IsOrderedParts, comment.PartsDescription).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка построения запроса вставки комментария: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка создания записи в 'request_comments': %w", err)
	}
	return nil
}

// CommentExistsInTx проверяет, есть ли уже такой же комментарий
// (заявка + автор + текст + признак заказа комплектующих).
// Уникального индекса под этот составной ключ в целевой схеме нет,
// поэтому проверка выполняется отдельным запросом перед вставкой.
func (r *CommentRepository) CommentExistsInTx(ctx context.Context, tx pgx.Tx, comment *entities.RequestComment) (bool, error) {
	query, args, err := psql.Select("1").
		From("request_comments").
		Where(sq.Eq{
			"request_id":       comment.RequestID,
			"user_id":          comment.UserID,
			"comment":          comment.Comment,
			"is_ordered_parts": comment.IsOrderedParts,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("ошибка построения запроса проверки комментария: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки существования комментария: %w", err)
	}
	defer rows.Close()

	return rows.Next(), rows.Err()
}
