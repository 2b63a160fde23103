package importer

import (
	"context"
	"fmt"

	"service-center-import/internal/dto"
	"service-center-import/internal/loader"
	"service-center-import/internal/repositories"
	"service-center-import/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ImportResult — итоговые счётчики запуска.
type ImportResult struct {
	Users    int
	Requests int
	Comments int
}

// Runner последовательно выполняет три фазы импорта: пользователи, заявки,
// комментарии. Порядок фаз — требование корректности: заявки ссылаются на
// карту пользователей, комментарии — на карту заявок. Каждая фаза
// выполняется в своей транзакции; ошибка внутри фазы откатывает её целиком
// и прерывает запуск.
type Runner struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
	cfg    *config.Config

	schema   repositories.SchemaRepositoryInterface
	users    *UserImporter
	requests *RequestImporter
	comments *CommentImporter
}

func NewRunner(pool *pgxpool.Pool, logger *zap.Logger, cfg *config.Config) *Runner {
	userRepo := repositories.NewUserRepository(pool, logger)
	requestRepo := repositories.NewRequestRepository(pool, logger)
	historyRepo := repositories.NewStatusHistoryRepository(pool)
	commentRepo := repositories.NewCommentRepository(pool)

	return &Runner{
		pool:     pool,
		logger:   logger,
		cfg:      cfg,
		schema:   repositories.NewSchemaRepository(pool, logger),
		users:    NewUserImporter(userRepo, logger, cfg.Import.DefaultPassword, cfg.Import.FallbackLogin),
		requests: NewRequestImporter(requestRepo, historyRepo, commentRepo, logger),
		comments: NewCommentImporter(commentRepo, logger),
	}
}

func (r *Runner) Run(ctx context.Context) (*ImportResult, error) {
	runID := uuid.New().String()
	logger := r.logger.With(zap.String("run_id", runID))

	// Проверка схемы — до чтения первой строки данных.
	if err := r.schema.CheckRequiredTables(ctx); err != nil {
		return nil, err
	}

	delimiter := ';'
	if r.cfg.Import.Delimiter != "" {
		delimiter = []rune(r.cfg.Import.Delimiter)[0]
	}

	userRows, err := loader.Load(r.cfg.Import.UsersFile, delimiter)
	if err != nil {
		return nil, err
	}
	requestRows, err := loader.Load(r.cfg.Import.RequestsFile, delimiter)
	if err != nil {
		return nil, err
	}
	commentRows, err := loader.Load(r.cfg.Import.CommentsFile, delimiter)
	if err != nil {
		return nil, err
	}

	userRecords := make([]dto.ExternalUserRecord, 0, len(userRows))
	for _, row := range userRows {
		if rec, ok := parseUserRecord(row); ok {
			userRecords = append(userRecords, rec)
		}
	}
	requestRecords := make([]dto.ExternalRequestRecord, 0, len(requestRows))
	for _, row := range requestRows {
		if rec, ok := parseRequestRecord(row); ok {
			requestRecords = append(requestRecords, rec)
		}
	}
	commentRecords := make([]dto.ExternalCommentRecord, 0, len(commentRows))
	for _, row := range commentRows {
		commentRecords = append(commentRecords, parseCommentRecord(row))
	}

	ids := NewIdentityMap()
	clients := BuildClientIndex(userRecords)
	result := &ImportResult{}
	var fallbackAuthor int64

	logger.Info("Импорт пользователей...")
	err = repositories.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		count, err := r.users.Run(ctx, tx, userRecords, ids)
		if err != nil {
			return err
		}
		result.Users = count

		fallbackAuthor, err = r.users.EnsureFallbackUser(ctx, tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("фаза импорта пользователей: %w", err)
	}
	logger.Info("Пользователей импортировано", zap.Int("count", result.Users))

	logger.Info("Импорт заявок...")
	err = repositories.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		count, err := r.requests.Run(ctx, tx, requestRecords, ids, clients, fallbackAuthor)
		if err != nil {
			return err
		}
		result.Requests = count
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("фаза импорта заявок: %w", err)
	}
	logger.Info("Заявок импортировано", zap.Int("count", result.Requests))

	logger.Info("Импорт комментариев...")
	err = repositories.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		count, err := r.comments.Run(ctx, tx, commentRecords, ids, fallbackAuthor)
		if err != nil {
			return err
		}
		result.Comments = count
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("фаза импорта комментариев: %w", err)
	}
	logger.Info("Комментариев импортировано", zap.Int("count", result.Comments))

	printSummary(result)
	return result, nil
}

func printSummary(result *ImportResult) {
	fmt.Printf("---------------------------------------------------------\n")
	fmt.Printf("🏁 РЕЗУЛЬТАТ ИМПОРТА:\n")
	fmt.Printf("   👤 Пользователей импортировано:  %d\n", result.Users)
	fmt.Printf("   📋 Заявок импортировано:         %d\n", result.Requests)
	fmt.Printf("   💬 Комментариев импортировано:   %d\n", result.Comments)
	fmt.Printf("---------------------------------------------------------\n")
}
