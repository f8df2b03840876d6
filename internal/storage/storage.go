package storage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/print-evaluator/internal/models"
)

// OrdersStorage - операции жизненного цикла заказов.
// Активные заказы лежат в основной таблице, заказы в конечном статусе
// переносятся фоновой архивацией в архивную.
type OrdersStorage interface {
	AddOrder(ctx context.Context, order models.OrderData) error
	GetActiveOrders(ctx context.Context) ([]models.OrderData, error)
	GetArchivedOrders(ctx context.Context) ([]models.OrderData, error)
	UpdateOrderStatus(ctx context.Context, date time.Time, status string) error
	ArchiveCompletedOrders(ctx context.Context) (int64, error)
}

var (
	ErrOrderNotFound = errors.New("order not found")

	ErrAlreadyExists = errors.New("already exists")
)
