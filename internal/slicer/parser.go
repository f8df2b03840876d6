package slicer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/denmor86/print-evaluator/internal/models"
)

var (
	// ErrTimeNotFound - в отчёте нет строки с расчётным временем печати
	ErrTimeNotFound = errors.New("estimated printing time not found in report")
	// ErrMaterialNotFound - в отчёте нет строки с расходом материала
	ErrMaterialNotFound = errors.New("material consumption not found in report")
)

var (
	timeRegexp     = regexp.MustCompile(`^; estimated printing time \(normal mode\) = (?:(\d+)h )?(?:(\d+)m )?(\d+)s$`)
	materialRegexp = regexp.MustCompile(`^; filament used \[mm\] = (\d+)`)
)

const secondsPerHour = 3600

// parseTimeLine - собирает компоненты времени (часы и минуты опциональны) в секунды
func parseTimeLine(matches []string) int64 {
	var seconds int64
	if matches[1] != "" {
		hours, _ := strconv.ParseInt(matches[1], 10, 64)
		seconds += hours * secondsPerHour
	}
	if matches[2] != "" {
		minutes, _ := strconv.ParseInt(matches[2], 10, 64)
		seconds += minutes * 60
	}
	value, _ := strconv.ParseInt(matches[3], 10, 64)
	return seconds + value
}

// ParseReport - построчно разбирает G-code отчёт слайсера.
// Обе строки (время и материал) обязаны присутствовать: отсутствие значения
// отличается от нулевого значения и считается ошибкой извлечения.
func ParseReport(reportPath string, materialType string) (models.PrintingParameters, error) {
	file, err := os.Open(reportPath)
	if err != nil {
		return models.PrintingParameters{}, fmt.Errorf("failed to open slicer report: %w", err)
	}
	defer file.Close()

	var (
		timeSeconds   int64
		materialMM    int64
		timeFound     bool
		materialFound bool
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if matches := timeRegexp.FindStringSubmatch(line); matches != nil {
			timeSeconds = parseTimeLine(matches)
			timeFound = true
		} else if matches := materialRegexp.FindStringSubmatch(line); matches != nil {
			materialMM, _ = strconv.ParseInt(matches[1], 10, 64)
			materialFound = true
		}
	}
	if err := scanner.Err(); err != nil {
		return models.PrintingParameters{}, fmt.Errorf("failed to read slicer report: %w", err)
	}

	if !timeFound {
		return models.PrintingParameters{}, ErrTimeNotFound
	}
	if !materialFound {
		return models.PrintingParameters{}, ErrMaterialNotFound
	}

	return models.PrintingParameters{
		TimeSeconds:  timeSeconds,
		MaterialMM:   materialMM,
		MaterialType: materialType,
	}, nil
}
