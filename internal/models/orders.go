package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заказов
const (
	OrderStatusNew        = "New"
	OrderStatusInProgress = "InProgress"
	OrderStatusCompleted  = "Completed"
	OrderStatusCanceled   = "Canceled"
)

// Формат даты заказа во внешних интерфейсах (дата используется как ключ заказа)
const OrderDateLayout = "2006-01-02 15:04:05"

// ParseOrderStatus - проверяет строку статуса заказа
func ParseOrderStatus(status string) (string, error) {
	switch status {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCanceled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown order status: %s", status)
	}
}

// IsTerminalStatus - проверяет, является ли статус конечным (заказ подлежит архивации)
func IsTerminalStatus(status string) bool {
	return status == OrderStatusCompleted || status == OrderStatusCanceled
}

// OrderData - модель заказа c рассчитанной ценой.
// Ключ заказа во внешних интерфейсах - дата создания,
// UUID строки таблицы наружу не выходит.
type OrderData struct {
	Date         time.Time
	Name         string
	Email        string
	CopiesNbr    int
	FileName     string
	Price        decimal.Decimal
	MaterialType string
	PrintType    string
	Status       string
}

// OrderResponse - модель заказа для выдачи в списках
type OrderResponse struct {
	Date         string  `json:"date"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	CopiesNbr    int     `json:"copies_nbr"`
	FileName     string  `json:"file_name"`
	Price        float64 `json:"price"`
	MaterialType string  `json:"material_type"`
	PrintType    string  `json:"print_type"`
	Status       string  `json:"status"`
}

// NewOrderResponse - преобразует модель заказа в модель выдачи
func NewOrderResponse(order OrderData) OrderResponse {
	return OrderResponse{
		Date:         order.Date.UTC().Format(OrderDateLayout),
		Name:         order.Name,
		Email:        order.Email,
		CopiesNbr:    order.CopiesNbr,
		FileName:     order.FileName,
		Price:        order.Price.InexactFloat64(),
		MaterialType: order.MaterialType,
		PrintType:    order.PrintType,
		Status:       order.Status,
	}
}

// ModifyOrderRequest - запрос смены статуса заказа
type ModifyOrderRequest struct {
	Datetime  string `json:"datetime"`
	NewStatus string `json:"new_status"`
}

// ModifyOrderResponse - результат запроса смены статуса заказа
type ModifyOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
