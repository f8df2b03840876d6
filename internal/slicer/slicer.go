package slicer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/denmor86/print-evaluator/internal/config"
	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/sony/gobreaker"
)

// Подкаталоги рабочей директории для файлов заказов
const (
	ReceivedOrdersDir  = "data_files/received_orders"
	ProcessedOrdersDir = "data_files/processed_orders"
)

var (
	// ErrSlicerUnavailable - слайсер недоступен (серия неудачных запусков)
	ErrSlicerUnavailable = errors.New("slicer unavailable")
	// ErrSlicerFailed - запуск слайсера завершился ошибкой
	ErrSlicerFailed = errors.New("slicer run failed")
	// ErrSlicerTimeout - запуск слайсера превысил таймаут
	ErrSlicerTimeout = errors.New("slicer run timed out")
)

// Extractor - интерфейс извлечения параметров печати из файла модели
type Extractor interface {
	Extract(ctx context.Context, submission models.OrderSubmission) (models.PrintingParameters, error)
}

// PrusaSlicer - извлекает параметры печати, запуская PrusaSlicer
// и разбирая сгенерированный G-code отчёт
type PrusaSlicer struct {
	Config  config.SlicerConfig
	Breaker *gobreaker.CircuitBreaker
	Limiter *Limiter
}

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "prusa-slicer",
		Timeout: 30 * time.Second, // через 30 сек пробуем запускать снова
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 неудачных запусков подряд
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker:", name, from.String(), "→", to.String())
		},
	})
}

// NewPrusaSlicer - конструктор интерфейса слайсера
func NewPrusaSlicer(cfg config.SlicerConfig) *PrusaSlicer {
	return &PrusaSlicer{
		Config:  cfg,
		Breaker: InitCircuitBreaker(),
		Limiter: NewLimiter(DefaultRunsPerMinute),
	}
}

// Ping - проверяет доступность исполняемого файла слайсера.
// Вызывается при старте сервиса, ошибка фатальна.
func (s *PrusaSlicer) Ping(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, s.Config.ExecPath, "--help")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to ping slicer at %s: %w", s.Config.ExecPath, err)
	}
	return nil
}

// ReceivedFilePath - путь к загруженному файлу модели по имени из заявки
func (s *PrusaSlicer) ReceivedFilePath(fileName string) string {
	return filepath.Join(s.Config.WorkspacePath, ReceivedOrdersDir, fileName)
}

// processedFilePath - путь к отчёту слайсера для файла модели
func (s *PrusaSlicer) processedFilePath(fileName string) string {
	return filepath.Join(s.Config.WorkspacePath, ProcessedOrdersDir, fileName+".gcode")
}

// Extract - запускает слайсер для файла модели и извлекает параметры печати из отчёта
func (s *PrusaSlicer) Extract(ctx context.Context, submission models.OrderSubmission) (models.PrintingParameters, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return models.PrintingParameters{}, err
	}

	reportPath := s.processedFilePath(submission.FileName)
	_, err := s.Breaker.Execute(func() (interface{}, error) {
		return nil, s.slice(ctx, s.ReceivedFilePath(submission.FileName), reportPath)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return models.PrintingParameters{}, ErrSlicerUnavailable
		}
		return models.PrintingParameters{}, err
	}

	return ParseReport(reportPath, submission.MaterialType)
}

// slice - запускает слайсер, который пишет G-code отчёт в reportPath
func (s *PrusaSlicer) slice(ctx context.Context, modelPath string, reportPath string) error {
	if err := os.MkdirAll(filepath.Dir(reportPath), 0o755); err != nil {
		return fmt.Errorf("failed to create processed orders directory: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, s.Config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, s.Config.ExecPath,
		"-g",
		"--load", s.Config.ProfilePath,
		"--output", reportPath,
		modelPath)

	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrSlicerTimeout, s.Config.Timeout)
		}
		logger.Error("Slicer run failed:", err, string(output))
		return fmt.Errorf("%w: %s", ErrSlicerFailed, err.Error())
	}
	return nil
}
