// Файл: app/main.go
package main

import (
	"context"
	"flag"
	"log"

	"service-center-import/internal/importer"
	"service-center-import/migrations"
	"service-center-import/pkg/config"
	"service-center-import/pkg/database/postgresql"
	applogger "service-center-import/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	log.Println("======================================================")
	log.Println("   🚚 ИМПОРТ ЛЕГАСИ-ДАННЫХ СЕРВИСНОГО ЦЕНТРА         ")
	log.Println("======================================================")

	// --- Определяем флаги ---
	usersFile := flag.String("users", "", "Путь к файлу пользователей (по умолчанию из IMPORT_USERS_FILE)")
	requestsFile := flag.String("requests", "", "Путь к файлу заявок (по умолчанию из IMPORT_REQUESTS_FILE)")
	commentsFile := flag.String("comments", "", "Путь к файлу комментариев (по умолчанию из IMPORT_COMMENTS_FILE)")
	runInit := flag.Bool("init", false, "Применить миграции схемы к БД перед импортом (только для dev/test-баз)")

	flag.Parse()

	cfg := config.New()
	if *usersFile != "" {
		cfg.Import.UsersFile = *usersFile
	}
	if *requestsFile != "" {
		cfg.Import.RequestsFile = *requestsFile
	}
	if *commentsFile != "" {
		cfg.Import.CommentsFile = *commentsFile
	}

	logger := applogger.NewLogger()
	defer logger.Sync()

	if *runInit {
		log.Println("▶️  Применение миграций схемы...")
		if err := migrations.Up(cfg.Postgres.DSN); err != nil {
			logger.Fatal("не удалось применить миграции", zap.Error(err))
		}
		log.Println("✅ Миграции применены.")
	}

	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	runner := importer.NewRunner(dbPool, logger, cfg)
	if _, err := runner.Run(context.Background()); err != nil {
		logger.Fatal("импорт прерван", zap.Error(err))
	}

	log.Println("✅ Импорт успешно завершён.")
	log.Println("======================================================")
}
