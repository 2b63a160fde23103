package importer

import (
	"context"

	"service-center-import/internal/dto"
	"service-center-import/internal/entities"
	"service-center-import/internal/repositories"
	"service-center-import/internal/translate"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UserImporter переносит пользователей из выгрузки и строит карту
// внешний userID -> внутренний users.id.
type UserImporter struct {
	users           repositories.UserRepositoryInterface
	validate        *validator.Validate
	logger          *zap.Logger
	defaultPassword string
	fallbackLogin   string
}

func NewUserImporter(
	users repositories.UserRepositoryInterface,
	logger *zap.Logger,
	defaultPassword string,
	fallbackLogin string,
) *UserImporter {
	return &UserImporter{
		users:           users,
		validate:        validator.New(),
		logger:          logger,
		defaultPassword: defaultPassword,
		fallbackLogin:   fallbackLogin,
	}
}

// Run импортирует пользователей по схеме "вставить-или-пропустить по логину,
// затем найти id по логину". Двухфазность принципиальна: даже если строка
// пропущена как дубликат, внутренний id существующего пользователя всё
// равно попадает в карту соответствий текущего запуска.
//
// Строки без логина не создают ни пользователя, ни записи в карте —
// это единственная причина, по которой счётчик может быть меньше числа
// строк в файле.
func (imp *UserImporter) Run(ctx context.Context, tx pgx.Tx, records []dto.ExternalUserRecord, ids *IdentityMap) (int, error) {
	for _, rec := range records {
		if err := imp.validate.Struct(rec); err != nil {
			imp.logger.Warn("Строка пользователя пропущена: нет логина или userID",
				zap.Int64("userID", rec.UserID))
			continue
		}

		user := entities.User{
			Login:    rec.Login,
			Password: translate.HashPassword(rec.Password, imp.defaultPassword),
			Fio:      rec.Fio,
			Role:     translate.MapRole(rec.Type),
			Phone:    rec.Phone,
			Email:    "",
			IsActive: true,
		}

		if err := imp.users.CreateUserInTx(ctx, tx, &user); err != nil {
			return 0, err
		}

		internalID, err := imp.users.FindUserIDByLoginInTx(ctx, tx, rec.Login)
		if err != nil {
			return 0, err
		}
		ids.RegisterUser(rec.UserID, internalID)
	}

	return ids.UserCount(), nil
}

// EnsureFallbackUser создаёт (однократно) служебного пользователя импорта
// и возвращает его внутренний id. Это детерминированный автор для
// комментариев, у которых в выгрузке не нашлось автора, — вместо
// случайного "первого пользователя карты" из легаси-скрипта.
func (imp *UserImporter) EnsureFallbackUser(ctx context.Context, tx pgx.Tx) (int64, error) {
	user := entities.User{
		Login:    imp.fallbackLogin,
		Password: translate.HashPassword("", imp.defaultPassword),
		Fio:      "Импорт легаси-данных",
		Role:     translate.RoleOperator,
		Phone:    "",
		Email:    "",
		IsActive: false,
	}

	if err := imp.users.CreateUserInTx(ctx, tx, &user); err != nil {
		return 0, err
	}
	return imp.users.FindUserIDByLoginInTx(ctx, tx, imp.fallbackLogin)
}
