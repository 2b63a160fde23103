package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"service-center-import/internal/dto"
	"service-center-import/internal/entities"
	"service-center-import/internal/repositories"
	"service-center-import/internal/translate"
	"service-center-import/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PartsOrderedComment — текст синтетического комментария, который
// создаётся из поля repairParts заявки.
const PartsOrderedComment = "Заказаны комплектующие"

// deadlineOffset — плановый срок исполнения: трое суток от даты старта.
const deadlineOffset = 72 * time.Hour

// RequestImporter переносит заявки: на каждую строку выгрузки — одна
// заявка, одна стартовая запись истории статусов и не более одного
// синтетического комментария о заказе комплектующих.
type RequestImporter struct {
	requests repositories.RequestRepositoryInterface
	history  repositories.StatusHistoryRepositoryInterface
	comments repositories.CommentRepositoryInterface
	validate *validator.Validate
	logger   *zap.Logger

	// now подменяется в тестах ради детерминизма.
	now func() time.Time
}

func NewRequestImporter(
	requests repositories.RequestRepositoryInterface,
	history repositories.StatusHistoryRepositoryInterface,
	comments repositories.CommentRepositoryInterface,
	logger *zap.Logger,
) *RequestImporter {
	return &RequestImporter{
		requests: requests,
		history:  history,
		comments: comments,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// RequestNumber — стабильный номер заявки, детерминированно выведенный из
// внешнего requestID: одна и та же строка выгрузки при любом запуске даёт
// один и тот же номер.
func RequestNumber(externalID int64) string {
	return fmt.Sprintf("IMP%05d", externalID)
}

func (imp *RequestImporter) Run(
	ctx context.Context,
	tx pgx.Tx,
	records []dto.ExternalRequestRecord,
	ids *IdentityMap,
	clients map[int64]ClientInfo,
	fallbackAuthor int64,
) (int, error) {
	for _, rec := range records {
		if err := imp.validate.Struct(rec); err != nil {
			imp.logger.Warn("Строка заявки пропущена: нет requestID")
			continue
		}

		// Дата старта. Отсутствующая или испорченная дата заменяется
		// текущим временем; из-за этого два запуска в разное время дают
		// разные created_date/deadline для таких строк — осознанное
		// следствие политики "не останавливаться из-за одной строки".
		createdDate, startKnown := translate.ParseDate(rec.StartDate)
		if !startKnown {
			if strings.TrimSpace(rec.StartDate) != "" {
				imp.logger.Warn("Дата старта заявки не разобрана, используется текущее время",
					zap.Int64("requestID", rec.RequestID),
					zap.String("startDate", rec.StartDate))
			}
			createdDate = imp.now()
		}

		status := translate.MapStatus(rec.RequestStatus)

		// Исполнитель: отсутствие мастера в карте (например, у него не было
		// логина) — тихая деградация, заявка остаётся без исполнителя.
		var assignedTo *int64
		if rec.MasterID.Valid {
			if internalID, ok := ids.ResolveUser(rec.MasterID.Int64); ok {
				assignedTo = utils.ToPtr(internalID)
			}
		}

		var custName, custPhone string
		if rec.ClientID.Valid {
			if ci, ok := clients[rec.ClientID.Int64]; ok {
				custName = ci.Fio
				custPhone = ci.Phone
			}
		}

		// Дата завершения хранится только у завершённых заявок: инвариант
		// целевой схемы. Дата завершения при любом другом статусе
		// отбрасывается.
		var completedDate *time.Time
		if status == translate.StatusCompleted {
			if t, ok := translate.ParseDate(rec.CompletionDate); ok {
				completedDate = utils.ToPtr(t)
			}
		}

		request := entities.Request{
			RequestNumber:      RequestNumber(rec.RequestID),
			CreatedDate:        createdDate,
			EquipmentType:      rec.HomeTechType,
			DeviceModel:        rec.HomeTechModel,
			FaultType:          "",
			ProblemDescription: rec.ProblemDescription,
			CustomerName:       custName,
			CustomerPhone:      custPhone,
			Status:             status,
			AssignedTo:         assignedTo,
			EstimatedCost:      0,
			ActualCost:         nil,
			Deadline:           createdDate.Add(deadlineOffset),
			CompletedDate:      completedDate,
		}

		internalID, created, err := imp.requests.CreateRequestInTx(ctx, tx, &request)
		if err != nil {
			return 0, err
		}
		ids.RegisterRequest(rec.RequestID, internalID)

		if !created {
			// Повторный запуск: заявка с этим номером уже импортирована,
			// история и комментарий о комплектующих у неё уже есть.
			continue
		}

		entry := entities.StatusHistory{
			RequestID: internalID,
			OldStatus: nil,
			NewStatus: status,
			ChangedBy: assignedTo,
		}
		if err := imp.history.CreateStatusHistoryInTx(ctx, tx, &entry); err != nil {
			return 0, err
		}

		if parts := strings.TrimSpace(rec.RepairParts); parts != "" {
			author := fallbackAuthor
			if assignedTo != nil {
				author = *assignedTo
			}
			comment := entities.RequestComment{
				RequestID:        internalID,
				UserID:           author,
				Comment:          PartsOrderedComment,
				IsOrderedParts:   true,
				PartsDescription: parts,
			}
			if err := imp.comments.CreateCommentInTx(ctx, tx, &comment); err != nil {
				return 0, err
			}
		}
	}

	return ids.RequestCount(), nil
}
