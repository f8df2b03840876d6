package upload

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/denmor86/print-evaluator/internal/config"
	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/denmor86/print-evaluator/internal/services/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func initLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
}

func makeSubmission(chunks int) models.OrderSubmission {
	return models.OrderSubmission{
		Name:         "John Doe",
		Email:        "john.doe@example.com",
		CopiesNbr:    5,
		FileName:     "model.stl",
		NbrOfChunks:  chunks,
		PrintType:    models.PrintPreciseStrong,
		MaterialType: models.MaterialPET,
	}
}

func makeOrder(submission models.OrderSubmission) models.OrderData {
	return models.OrderData{
		Date:         time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Name:         submission.Name,
		Email:        submission.Email,
		CopiesNbr:    submission.CopiesNbr,
		FileName:     submission.FileName,
		Price:        decimal.RequireFromString("215.2"),
		MaterialType: submission.MaterialType,
		PrintType:    submission.PrintType,
		Status:       models.OrderStatusNew,
	}
}

func metadataFrame(t *testing.T, submission models.OrderSubmission) []byte {
	t.Helper()
	data, err := json.Marshal(submission)
	if err != nil {
		t.Fatalf("failed to marshal submission: %v", err)
	}
	return data
}

func TestSession_CompleteUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockEvaluator := mocks.NewMockEvaluationService(ctrl)
	initLogger(t)

	receivedDir := t.TempDir()
	session := NewSession(mockEvaluator, receivedDir)
	submission := makeSubmission(3)

	mockEvaluator.EXPECT().Evaluate(gomock.Any(), submission).Return(makeOrder(submission), nil).Times(1)

	if err := session.HandleText(metadataFrame(t, submission)); err != nil {
		t.Fatalf("unexpected error on metadata: %v", err)
	}

	chunks := [][]byte{[]byte("solid "), []byte("model"), []byte(" data")}
	for i, chunk := range chunks {
		response, err := session.HandleBinary(context.Background(), chunk)
		if err != nil {
			t.Fatalf("unexpected error on chunk %d: %v", i, err)
		}
		if i < len(chunks)-1 && response != nil {
			t.Fatalf("unexpected response before last chunk %d", i)
		}
		if i == len(chunks)-1 {
			if response == nil {
				t.Fatal("expected evaluation response after last chunk")
			}
			if response.Type != "evaluation_result" {
				t.Errorf("expected type evaluation_result, got %s", response.Type)
			}
			if response.Price != 215.2 {
				t.Errorf("expected price 215.2, got %v", response.Price)
			}
			if response.Status != models.OrderStatusNew {
				t.Errorf("expected status %s, got %s", models.OrderStatusNew, response.Status)
			}
		}
	}

	// файл собран из фрагментов в порядке получения
	content, err := os.ReadFile(filepath.Join(receivedDir, submission.FileName))
	if err != nil {
		t.Fatalf("failed to read assembled file: %v", err)
	}
	if string(content) != "solid model data" {
		t.Errorf("unexpected assembled file content: %q", string(content))
	}

	// после успешной оценки сессия снова ждёт заявку
	if err := session.HandleText(metadataFrame(t, submission)); err != nil {
		t.Fatalf("session must accept a new submission after completion: %v", err)
	}
}

func TestSession_FreshStartRemovesStaleFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockEvaluator := mocks.NewMockEvaluationService(ctrl)
	initLogger(t)

	receivedDir := t.TempDir()
	submission := makeSubmission(1)

	// остатки прошлой незавершённой загрузки
	stalePath := filepath.Join(receivedDir, submission.FileName)
	if err := os.WriteFile(stalePath, []byte("stale content"), 0o644); err != nil {
		t.Fatalf("failed to write stale file: %v", err)
	}

	mockEvaluator.EXPECT().Evaluate(gomock.Any(), submission).Return(makeOrder(submission), nil)

	session := NewSession(mockEvaluator, receivedDir)
	if err := session.HandleText(metadataFrame(t, submission)); err != nil {
		t.Fatalf("unexpected error on metadata: %v", err)
	}
	if _, err := session.HandleBinary(context.Background(), []byte("fresh")); err != nil {
		t.Fatalf("unexpected error on chunk: %v", err)
	}

	content, err := os.ReadFile(stalePath)
	if err != nil {
		t.Fatalf("failed to read assembled file: %v", err)
	}
	if string(content) != "fresh" {
		t.Errorf("stale file must be replaced, got content: %q", string(content))
	}
}

func TestSession_ProtocolViolations(t *testing.T) {
	initLogger(t)

	testCases := []struct {
		TestName      string
		Run           func(t *testing.T, session *Session) error
		ExpectedError error
	}{
		{
			TestName: "Binary frame before metadata #1",
			Run: func(t *testing.T, session *Session) error {
				_, err := session.HandleBinary(context.Background(), []byte("data"))
				return err
			},
			ExpectedError: ErrChunkBeforeMetadata,
		},
		{
			TestName: "Text message while receiving chunks #2",
			Run: func(t *testing.T, session *Session) error {
				if err := session.HandleText(metadataFrame(t, makeSubmission(2))); err != nil {
					t.Fatalf("unexpected error on metadata: %v", err)
				}
				return session.HandleText(metadataFrame(t, makeSubmission(2)))
			},
			ExpectedError: ErrUnexpectedText,
		},
		{
			TestName: "Malformed metadata JSON #3",
			Run: func(t *testing.T, session *Session) error {
				return session.HandleText([]byte("{not json"))
			},
		},
		{
			TestName: "Zero copies in metadata #4",
			Run: func(t *testing.T, session *Session) error {
				submission := makeSubmission(2)
				submission.CopiesNbr = 0
				return session.HandleText(metadataFrame(t, submission))
			},
		},
		{
			TestName: "Zero chunks in metadata #5",
			Run: func(t *testing.T, session *Session) error {
				return session.HandleText(metadataFrame(t, makeSubmission(0)))
			},
		},
		{
			TestName: "Unknown material in metadata #6",
			Run: func(t *testing.T, session *Session) error {
				submission := makeSubmission(2)
				submission.MaterialType = "WOOD"
				return session.HandleText(metadataFrame(t, submission))
			},
		},
		{
			TestName: "File name with path separators #7",
			Run: func(t *testing.T, session *Session) error {
				submission := makeSubmission(2)
				submission.FileName = "../../etc/passwd"
				return session.HandleText(metadataFrame(t, submission))
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.TestName, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// оценка не должна запускаться при нарушении протокола
			mockEvaluator := mocks.NewMockEvaluationService(ctrl)

			session := NewSession(mockEvaluator, t.TempDir())
			err := testCase.Run(t, session)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if testCase.ExpectedError != nil && !errors.Is(err, testCase.ExpectedError) {
				t.Errorf("expected error %v, got %v", testCase.ExpectedError, err)
			}
		})
	}
}

func TestSession_ExtraChunkDoesNotTriggerSecondEvaluation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockEvaluator := mocks.NewMockEvaluationService(ctrl)
	initLogger(t)

	submission := makeSubmission(1)
	mockEvaluator.EXPECT().Evaluate(gomock.Any(), submission).Return(makeOrder(submission), nil).Times(1)

	session := NewSession(mockEvaluator, t.TempDir())
	if err := session.HandleText(metadataFrame(t, submission)); err != nil {
		t.Fatalf("unexpected error on metadata: %v", err)
	}
	response, err := session.HandleBinary(context.Background(), []byte("data"))
	if err != nil {
		t.Fatalf("unexpected error on chunk: %v", err)
	}
	if response == nil {
		t.Fatal("expected evaluation response")
	}

	// лишний фрагмент после завершения - нарушение протокола, а не вторая оценка
	if _, err := session.HandleBinary(context.Background(), []byte("extra")); !errors.Is(err, ErrChunkBeforeMetadata) {
		t.Errorf("expected %v, got %v", ErrChunkBeforeMetadata, err)
	}
}

func TestCloseReason(t *testing.T) {

	testCases := []struct {
		TestName string
		Reason   string
	}{
		{
			TestName: "Short reason passes through #1",
			Reason:   "invalid order metadata",
		},
		{
			TestName: "Long ASCII reason truncated #2",
			Reason:   strings.Repeat("a", 200),
		},
		{
			TestName: "Truncation does not split a multibyte rune #3",
			// двухбайтовые руны с нечётным лимитом: байт 123 попадает в середину руны
			Reason:   strings.Repeat("ы", 100),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.TestName, func(t *testing.T) {
			reason := closeReason(errors.New(testCase.Reason))
			if len(reason) > maxCloseReason {
				t.Errorf("close reason exceeds %d bytes: %d", maxCloseReason, len(reason))
			}
			if !utf8.ValidString(reason) {
				t.Errorf("close reason is not valid UTF-8: %q", reason)
			}
			if len(testCase.Reason) <= maxCloseReason && reason != testCase.Reason {
				t.Errorf("short reason must pass through unchanged, got %q", reason)
			}
		})
	}
}

func TestSession_EvaluationFailureClosesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockEvaluator := mocks.NewMockEvaluationService(ctrl)
	initLogger(t)

	submission := makeSubmission(1)
	evalErr := errors.New("extraction failed: slicer run failed")
	mockEvaluator.EXPECT().Evaluate(gomock.Any(), submission).Return(models.OrderData{}, evalErr)

	session := NewSession(mockEvaluator, t.TempDir())
	if err := session.HandleText(metadataFrame(t, submission)); err != nil {
		t.Fatalf("unexpected error on metadata: %v", err)
	}
	if _, err := session.HandleBinary(context.Background(), []byte("data")); !errors.Is(err, evalErr) {
		t.Errorf("expected evaluation error, got %v", err)
	}
}
