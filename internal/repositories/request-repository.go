package repositories

import (
	"context"
	"errors"
	"fmt"

	"service-center-import/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type RequestRepositoryInterface interface {
	CreateRequestInTx(ctx context.Context, tx pgx.Tx, request *entities.Request) (id int64, created bool, err error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

// CreateRequestInTx вставляет заявку по уникальному номеру (request_number).
// Заявка с таким номером уже есть — значит, этот же внешний requestID уже
// импортировали раньше: возвращается её существующий id и created=false,
// чтобы вызывающая сторона не плодила историю статусов и комментарии.
func (r *RequestRepository) CreateRequestInTx(ctx context.Context, tx pgx.Tx, request *entities.Request) (int64, bool, error) {
	query, args, err := psql.Insert("requests").
		Columns(
			"request_number", "created_date",
			"equipment_type", "device_model", "fault_type", "problem_description",
			"customer_name", "customer_phone",
			"status", "assigned_to",
			"estimated_cost", "actual_cost",
			"deadline", "completed_date",
		).
		Values(
			request.RequestNumber, request.CreatedDate,
			request.EquipmentType, request.DeviceModel, request.FaultType, request.ProblemDescription,
			request.CustomerName, request.CustomerPhone,
			request.Status, request.AssignedTo,
			request.EstimatedCost, request.ActualCost,
			request.Deadline, request.CompletedDate,
		).
		Suffix("ON CONFLICT (request_number) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("ошибка построения запроса вставки заявки: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx, query, args...).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("ошибка создания заявки '%s': %w", request.RequestNumber, err)
	}

	// Вставка не произошла — достаём id существующей заявки по номеру.
	err = tx.QueryRow(ctx, `SELECT id FROM requests WHERE request_number = $1`, request.RequestNumber).Scan(&id)
	if err != nil {
		return 0, false, fmt.Errorf("ошибка поиска заявки по номеру '%s': %w", request.RequestNumber, err)
	}
	return id, false, nil
}
