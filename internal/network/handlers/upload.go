package handlers

import (
	"net/http"

	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/services"
	"github.com/denmor86/print-evaluator/internal/upload"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// фронтенд раздаётся отдельно, происхождение не проверяем
	CheckOrigin: func(r *http.Request) bool { return true },
}

// UploadHandler — апгрейд соединения в WebSocket-сессию загрузки заказа
func UploadHandler(evaluator services.EvaluationService, receivedDir string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("Failed to upgrade connection:", zap.Error(err))
			return
		}
		session := upload.NewSession(evaluator, receivedDir)
		session.Serve(r.Context(), conn)
	})
}

// BackendStatusHandler — проверка готовности сервиса
func BackendStatusHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Application initialized successfully")); err != nil {
			logger.Error("Failed to write status response:", zap.Error(err))
		}
	})
}
