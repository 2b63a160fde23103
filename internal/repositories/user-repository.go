package repositories

import (
	"context"
	"errors"
	"fmt"

	"service-center-import/internal/entities"
	apperrors "service-center-import/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepositoryInterface interface {
	CreateUserInTx(ctx context.Context, tx pgx.Tx, user *entities.User) error
	FindUserIDByLoginInTx(ctx context.Context, tx pgx.Tx, login string) (int64, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

// CreateUserInTx вставляет пользователя по естественному ключу (логину).
// Если пользователь с таким логином уже есть — вставка молча пропускается:
// повторный запуск импорта не должен создавать дубликаты. Внутренний id
// после этого восстанавливается отдельным FindUserIDByLoginInTx.
func (r *UserRepository) CreateUserInTx(ctx context.Context, tx pgx.Tx, user *entities.User) error {
	query, args, err := psql.Insert("users").
		Columns("username", "password", "full_name", "role", "phone", "email", "is_active").
		Values(user.Login, user.Password, user.Fio, user.Role, user.Phone, user.Email, user.IsActive).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка построения запроса вставки пользователя: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка создания пользователя '%s': %w", user.Login, err)
	}
	return nil
}

func (r *UserRepository) FindUserIDByLoginInTx(ctx context.Context, tx pgx.Tx, login string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, login).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("ошибка поиска пользователя по логину '%s': %w", login, err)
	}
	return id, nil
}
