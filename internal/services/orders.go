package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/denmor86/print-evaluator/internal/storage"
)

var (
	ErrInvalidDate   = errors.New("invalid order date")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrOrderNotFound = errors.New("order not found")
)

// OrdersService - выдача списков заказов и смена статуса
type OrdersService interface {
	GetActiveOrders(ctx context.Context) ([]models.OrderResponse, error)
	GetArchivedOrders(ctx context.Context) ([]models.OrderResponse, error)
	UpdateStatus(ctx context.Context, request models.ModifyOrderRequest) error
}

// ArchiveNotifier - уведомление фоновой архивации о появлении
// заказа в конечном статусе
type ArchiveNotifier interface {
	Notify()
}

type Orders struct {
	Storage  storage.OrdersStorage
	Archiver ArchiveNotifier
}

// Создание сервиса
func NewOrders(storage storage.OrdersStorage, archiver ArchiveNotifier) *Orders {
	return &Orders{Storage: storage, Archiver: archiver}
}

// GetActiveOrders - возвращает все активные заказы
func (s *Orders) GetActiveOrders(ctx context.Context) ([]models.OrderResponse, error) {
	orders, err := s.Storage.GetActiveOrders(ctx)
	if err != nil {
		return nil, err
	}
	return makeResponses(orders), nil
}

// GetArchivedOrders - возвращает все заказы из архива
func (s *Orders) GetArchivedOrders(ctx context.Context) ([]models.OrderResponse, error) {
	orders, err := s.Storage.GetArchivedOrders(ctx)
	if err != nil {
		return nil, err
	}
	return makeResponses(orders), nil
}

func makeResponses(orders []models.OrderData) []models.OrderResponse {
	var responses []models.OrderResponse
	for _, order := range orders {
		responses = append(responses, models.NewOrderResponse(order))
	}
	return responses
}

// UpdateStatus - меняет статус одного активного заказа по дате создания.
// Перенос заказа в архив выполняется фоном после подтверждения смены статуса.
func (s *Orders) UpdateStatus(ctx context.Context, request models.ModifyOrderRequest) error {
	date, err := time.ParseInLocation(models.OrderDateLayout, request.Datetime, time.UTC)
	if err != nil {
		return ErrInvalidDate
	}

	status, err := models.ParseOrderStatus(request.NewStatus)
	if err != nil {
		return ErrInvalidStatus
	}

	if err := s.Storage.UpdateOrderStatus(ctx, date, status); err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if models.IsTerminalStatus(status) {
		logger.Info("Order reached terminal status, scheduling archive sweep:", request.Datetime)
		s.Archiver.Notify()
	}
	return nil
}
