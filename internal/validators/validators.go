package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/denmor86/print-evaluator/internal/models"
)

var (
	ErrEmptyName        = errors.New("name is empty")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidCopiesNbr = errors.New("copies number must be at least 1")
	ErrEmptyFileName    = errors.New("file name is empty")
	ErrInvalidFileName  = errors.New("file name must not contain path separators")
	ErrInvalidChunksNbr = errors.New("number of chunks must be at least 1")
)

// CheckSubmission проверяет заявку клиента перед началом приёма файла
func CheckSubmission(submission models.OrderSubmission) error {
	if strings.TrimSpace(submission.Name) == "" {
		return ErrEmptyName
	}
	if !strings.Contains(submission.Email, "@") {
		return ErrInvalidEmail
	}
	if submission.CopiesNbr < 1 {
		return ErrInvalidCopiesNbr
	}
	if strings.TrimSpace(submission.FileName) == "" {
		return ErrEmptyFileName
	}
	// имя файла используется как часть пути на диске
	if strings.ContainsAny(submission.FileName, `/\`) || strings.Contains(submission.FileName, "..") {
		return ErrInvalidFileName
	}
	if submission.NbrOfChunks < 1 {
		return ErrInvalidChunksNbr
	}
	if _, err := models.ParseMaterialType(submission.MaterialType); err != nil {
		return fmt.Errorf("invalid submission: %w", err)
	}
	if _, err := models.ParsePrintType(submission.PrintType); err != nil {
		return fmt.Errorf("invalid submission: %w", err)
	}
	return nil
}
