package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/storage"
)

// ArchiveWorker - фоновый воркер переноса завершённых заказов в архив.
// Срабатывает по уведомлению о смене статуса и по таймеру
// (таймер подбирает заказы, чьё уведомление было потеряно).
type ArchiveWorker struct {
	Storage       storage.OrdersStorage
	WaitGroup     sync.WaitGroup
	QuitChan      chan struct{}
	NotifyChan    chan struct{}
	SweepInterval time.Duration
}

// NewArchiveWorker - конструктор воркера архивации
func NewArchiveWorker(storage storage.OrdersStorage, sweepInterval time.Duration) *ArchiveWorker {
	return &ArchiveWorker{
		Storage:       storage,
		QuitChan:      make(chan struct{}),
		NotifyChan:    make(chan struct{}, 1),
		SweepInterval: sweepInterval,
	}
}

// Start - запускает воркер в фоне
func (w *ArchiveWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *ArchiveWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Notify - запрашивает внеочередной проход архивации, не блокируя вызывающего
func (w *ArchiveWorker) Notify() {
	select {
	case w.NotifyChan <- struct{}{}:
	default:
		// проход уже запланирован
	}
}

// Run - основная рабочая логика
func (w *ArchiveWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("ArchiveWorker signal stop")
			return
		case <-w.NotifyChan:
			w.Sweep(ctx)
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep - переносит все заказы в конечном статусе в архив
func (w *ArchiveWorker) Sweep(ctx context.Context) {
	count, err := w.Storage.ArchiveCompletedOrders(ctx)
	if err != nil {
		logger.Error("Error archiving completed orders", err)
		return
	}
	if count > 0 {
		logger.Info("Archived completed orders:", count)
	}
}
