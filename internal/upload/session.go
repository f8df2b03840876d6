package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/denmor86/print-evaluator/internal/services"
	"github.com/denmor86/print-evaluator/internal/validators"
	"github.com/gorilla/websocket"
)

var (
	// ErrUnexpectedText - текстовое сообщение во время приёма фрагментов файла
	ErrUnexpectedText = errors.New("unexpected text message while receiving chunks")
	// ErrChunkBeforeMetadata - бинарный фрагмент до получения заявки
	ErrChunkBeforeMetadata = errors.New("binary frame received before order metadata")
	// ErrChunkCountExceeded - фрагментов пришло больше, чем заявлено
	ErrChunkCountExceeded = errors.New("chunk count exceeded")
)

const (
	closeTimeout = 5 * time.Second
	// лимит размера причины в контрольном фрейме закрытия
	maxCloseReason = 123
)

// Session - сессия загрузки одного соединения.
// Конечный автомат: ожидание заявки → приём заявленного числа фрагментов →
// оценка заказа и отправка результата → снова ожидание заявки.
// Любое нарушение протокола закрывает соединение с указанием причины.
type Session struct {
	Evaluator   services.EvaluationService
	ReceivedDir string

	submission     *models.OrderSubmission
	chunksReceived int
}

// NewSession - конструктор сессии загрузки
func NewSession(evaluator services.EvaluationService, receivedDir string) *Session {
	return &Session{Evaluator: evaluator, ReceivedDir: receivedDir}
}

// reset - сбрасывает сессию в ожидание следующей заявки
func (s *Session) reset() {
	s.submission = nil
	s.chunksReceived = 0
}

// HandleText - обрабатывает текстовое сообщение: в ожидании заявки это
// метаданные заказа, во время приёма фрагментов - нарушение протокола.
// Ненулевая ошибка фатальна для сессии.
func (s *Session) HandleText(data []byte) error {
	if s.submission != nil {
		return ErrUnexpectedText
	}

	var submission models.OrderSubmission
	if err := json.Unmarshal(data, &submission); err != nil {
		return fmt.Errorf("invalid order metadata: %w", err)
	}
	if err := validators.CheckSubmission(submission); err != nil {
		return fmt.Errorf("invalid order metadata: %w", err)
	}

	s.submission = &submission
	s.chunksReceived = 0
	logger.Info("Order metadata accepted:", submission.FileName, "chunks:", submission.NbrOfChunks)
	return nil
}

// HandleBinary - обрабатывает один бинарный фрагмент файла модели.
// После приёма последнего фрагмента запускает оценку заказа и возвращает
// сообщение с результатом. Ненулевая ошибка фатальна для сессии.
func (s *Session) HandleBinary(ctx context.Context, data []byte) (*models.EvaluationResponse, error) {
	if s.submission == nil {
		return nil, ErrChunkBeforeMetadata
	}
	if s.chunksReceived >= s.submission.NbrOfChunks {
		return nil, ErrChunkCountExceeded
	}

	if err := s.appendChunk(data); err != nil {
		s.reset()
		return nil, fmt.Errorf("failed to store chunk: %w", err)
	}
	s.chunksReceived++

	if s.chunksReceived < s.submission.NbrOfChunks {
		return nil, nil
	}

	// файл собран полностью, оцениваем заказ
	submission := *s.submission
	s.reset()
	order, err := s.Evaluator.Evaluate(ctx, submission)
	if err != nil {
		return nil, err
	}
	response := models.NewEvaluationResponse(order)
	return &response, nil
}

// appendChunk - дописывает фрагмент в файл модели.
// Первый фрагмент начинает файл заново, остатки прошлой загрузки удаляются.
func (s *Session) appendChunk(data []byte) error {
	filePath := filepath.Join(s.ReceivedDir, s.submission.FileName)
	if s.chunksReceived == 0 {
		if err := os.MkdirAll(s.ReceivedDir, 0o755); err != nil {
			return err
		}
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Serve - цикл обработки сообщений соединения.
// Оценка заказа выполняется на горутине соединения: медленный слайсер
// задерживает только свою сессию, следующая заявка не начнётся,
// пока не отправлен результат текущей.
func (s *Session) Serve(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Upload connection closed unexpectedly:", err)
			}
			return
		}

		var response *models.EvaluationResponse
		switch messageType {
		case websocket.TextMessage:
			err = s.HandleText(data)
		case websocket.BinaryMessage:
			response, err = s.HandleBinary(ctx, data)
		default:
			// ping/pong/close обрабатывает транспорт
			if err := conn.WriteMessage(websocket.TextMessage,
				[]byte("Unsupported message type. Only text and binary messages are supported.")); err != nil {
				return
			}
			continue
		}

		if err != nil {
			logger.Warn("Upload session failed:", err)
			s.close(conn, err)
			return
		}

		if response != nil {
			if err := conn.WriteJSON(response); err != nil {
				logger.Error("Failed to send evaluation result:", err)
				return
			}
		}
	}
}

// closeReason - готовит причину закрытия для контрольного фрейма:
// не более 123 байт, обрезка только по границе руны
// (фрейм с разрезанной UTF-8 последовательностью невалиден)
func closeReason(reason error) string {
	text := reason.Error()
	if len(text) <= maxCloseReason {
		return text
	}
	text = text[:maxCloseReason]
	for len(text) > 0 && !utf8.ValidString(text) {
		text = text[:len(text)-1]
	}
	return text
}

// close - закрывает соединение с указанием причины
func (s *Session) close(conn *websocket.Conn, reason error) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, closeReason(reason))
	if err := conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(closeTimeout)); err != nil {
		logger.Error("Failed to send close message:", err)
	}
}
