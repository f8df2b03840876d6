package services

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/denmor86/print-evaluator/internal/pricing"
	"github.com/denmor86/print-evaluator/internal/slicer"
	"github.com/denmor86/print-evaluator/internal/storage"
)

// EvaluationService - конвейер оценки заказа: извлечение параметров печати,
// расчёт цены, сохранение заказа
type EvaluationService interface {
	Evaluate(ctx context.Context, submission models.OrderSubmission) (models.OrderData, error)
}

type Evaluation struct {
	Storage   storage.OrdersStorage
	Extractor slicer.Extractor
	Rates     pricing.RateTable
}

// Создание сервиса
func NewEvaluation(storage storage.OrdersStorage, extractor slicer.Extractor, rates pricing.RateTable) *Evaluation {
	return &Evaluation{Storage: storage, Extractor: extractor, Rates: rates}
}

// Evaluate - оценивает один заказ по полностью загруженному файлу модели.
// Ошибка любого шага прерывает конвейер, заказ сохраняется только после
// успешного расчёта цены.
func (s *Evaluation) Evaluate(ctx context.Context, submission models.OrderSubmission) (models.OrderData, error) {
	// дата создания используется как ключ заказа, субсекунды отбрасываются
	date := time.Now().UTC().Truncate(time.Second)

	params, err := s.Extractor.Extract(ctx, submission)
	if err != nil {
		logger.Error("Failed to extract printing parameters:", submission.FileName, err)
		return models.OrderData{}, fmt.Errorf("extraction failed: %w", err)
	}

	price, err := pricing.Price(s.Rates, params, submission.CopiesNbr)
	if err != nil {
		logger.Error("Failed to calculate price:", submission.FileName, err)
		return models.OrderData{}, fmt.Errorf("price calculation failed: %w", err)
	}

	order := models.OrderData{
		Date:         date,
		Name:         submission.Name,
		Email:        submission.Email,
		CopiesNbr:    submission.CopiesNbr,
		FileName:     submission.FileName,
		Price:        price,
		MaterialType: submission.MaterialType,
		PrintType:    submission.PrintType,
		Status:       models.OrderStatusNew,
	}

	if err := s.Storage.AddOrder(ctx, order); err != nil {
		logger.Error("Failed to persist order:", submission.FileName, err)
		return models.OrderData{}, fmt.Errorf("persistence failed: %w", err)
	}

	logger.Info("Order evaluated:", submission.FileName, "price:", price.String())
	return order, nil
}
