package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/print-evaluator/internal/config"
	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/denmor86/print-evaluator/internal/services/mocks"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dialUpload(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(serverURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	return conn
}

func TestUploadHandler_CompleteUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockEvaluator := mocks.NewMockEvaluationService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	submission := models.OrderSubmission{
		Name:         "John Doe",
		Email:        "john.doe@example.com",
		CopiesNbr:    5,
		FileName:     "model.stl",
		NbrOfChunks:  2,
		PrintType:    models.PrintThickSoft,
		MaterialType: models.MaterialASA,
	}
	order := models.OrderData{
		Date:         time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Name:         submission.Name,
		Email:        submission.Email,
		CopiesNbr:    submission.CopiesNbr,
		FileName:     submission.FileName,
		Price:        decimal.RequireFromString("42.5"),
		MaterialType: submission.MaterialType,
		PrintType:    submission.PrintType,
		Status:       models.OrderStatusNew,
	}
	mockEvaluator.EXPECT().Evaluate(gomock.Any(), submission).Return(order, nil).Times(1)

	server := httptest.NewServer(UploadHandler(mockEvaluator, t.TempDir()))
	defer server.Close()

	conn := dialUpload(t, server.URL)
	defer conn.Close()

	metadata, err := json.Marshal(submission)
	if err != nil {
		t.Fatalf("failed to marshal submission: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, metadata); err != nil {
		t.Fatalf("failed to send metadata: %v", err)
	}
	for _, chunk := range []string{"solid ", "model"} {
		if err := conn.WriteMessage(websocket.BinaryMessage, []byte(chunk)); err != nil {
			t.Fatalf("failed to send chunk: %v", err)
		}
	}

	var response models.EvaluationResponse
	if err := conn.ReadJSON(&response); err != nil {
		t.Fatalf("failed to read evaluation result: %v", err)
	}
	if response.Type != "evaluation_result" {
		t.Errorf("expected type evaluation_result, got %s", response.Type)
	}
	if response.Price != 42.5 {
		t.Errorf("expected price 42.5, got %v", response.Price)
	}
	if response.FileName != submission.FileName {
		t.Errorf("expected file name %s, got %s", submission.FileName, response.FileName)
	}
}

func TestUploadHandler_BinaryBeforeMetadataClosesConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// оценка не должна запускаться
	mockEvaluator := mocks.NewMockEvaluationService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	server := httptest.NewServer(UploadHandler(mockEvaluator, t.TempDir()))
	defer server.Close()

	conn := dialUpload(t, server.URL)
	defer conn.Close()

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte("data")); err != nil {
		t.Fatalf("failed to send chunk: %v", err)
	}

	_, _, err := conn.ReadMessage()
	if err == nil {
		t.Fatal("expected connection close, got message")
	}
	if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Errorf("expected policy violation close, got %v", err)
	}
}
