package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/print-evaluator/internal/logger"
	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/denmor86/print-evaluator/internal/services"
	"go.uber.org/zap"
)

// writeOrders - отправляет список заказов в JSON
func writeOrders(w http.ResponseWriter, orders []models.OrderResponse) {
	if orders == nil {
		orders = []models.OrderResponse{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// GetOrdersHandler — получение списка активных заказов
func GetOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orders, err := s.GetActiveOrders(r.Context())
		if err != nil {
			logger.Error("Failed to get orders:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeOrders(w, orders)
	})
}

// GetArchivedOrdersHandler — получение списка заказов из архива
func GetArchivedOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orders, err := s.GetArchivedOrders(r.Context())
		if err != nil {
			logger.Error("Failed to get archived orders:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeOrders(w, orders)
	})
}

// writeModifyResponse - отправляет результат смены статуса заказа
func writeModifyResponse(w http.ResponseWriter, statusCode int, success bool, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := models.ModifyOrderResponse{Success: success, Message: message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

// ModifyOrderHandler — смена статуса заказа по дате создания
func ModifyOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.ModifyOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid modify request body:", zap.Error(err))
			writeModifyResponse(w, http.StatusBadRequest, false, "Invalid request body")
			return
		}

		err := s.UpdateStatus(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidDate):
				writeModifyResponse(w, http.StatusBadRequest, false, "Invalid order date format")
			case errors.Is(err, services.ErrInvalidStatus):
				writeModifyResponse(w, http.StatusBadRequest, false, "Invalid order status")
			case errors.Is(err, services.ErrOrderNotFound):
				writeModifyResponse(w, http.StatusNotFound, false, "Order not found")
			default:
				logger.Error("Failed to update order status:", zap.Error(err))
				writeModifyResponse(w, http.StatusInternalServerError, false, "Server error")
			}
			return
		}
		writeModifyResponse(w, http.StatusOK, true, "Order status updated")
	})
}
