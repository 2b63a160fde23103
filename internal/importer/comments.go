package importer

import (
	"context"

	"service-center-import/internal/dto"
	"service-center-import/internal/entities"
	"service-center-import/internal/repositories"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CommentImporter привязывает комментарии выгрузки к уже импортированным
// заявкам. Комментарий-сирота (его requestID нет в карте заявок) молча
// отбрасывается — это осознанная потеря данных, видимая только по счётчику.
type CommentImporter struct {
	comments repositories.CommentRepositoryInterface
	logger   *zap.Logger
}

func NewCommentImporter(comments repositories.CommentRepositoryInterface, logger *zap.Logger) *CommentImporter {
	return &CommentImporter{comments: comments, logger: logger}
}

func (imp *CommentImporter) Run(
	ctx context.Context,
	tx pgx.Tx,
	records []dto.ExternalCommentRecord,
	ids *IdentityMap,
	fallbackAuthor int64,
) (int, error) {
	imported := 0

	for _, rec := range records {
		if rec.Message == "" {
			continue
		}
		if !rec.RequestID.Valid {
			continue
		}

		requestID, ok := ids.ResolveRequest(rec.RequestID.Int64)
		if !ok {
			imp.logger.Warn("Комментарий пропущен: заявка не импортирована",
				zap.Int64("requestID", rec.RequestID.Int64))
			continue
		}

		author := fallbackAuthor
		if rec.MasterID.Valid {
			if internalID, resolved := ids.ResolveUser(rec.MasterID.Int64); resolved {
				author = internalID
			}
		}

		comment := entities.RequestComment{
			RequestID:        requestID,
			UserID:           author,
			Comment:          rec.Message,
			IsOrderedParts:   false,
			PartsDescription: "",
		}

		// Защита от дублей при повторном запуске.
		exists, err := imp.comments.CommentExistsInTx(ctx, tx, &comment)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}

		if err := imp.comments.CreateCommentInTx(ctx, tx, &comment); err != nil {
			return 0, err
		}
		imported++
	}

	return imported, nil
}
