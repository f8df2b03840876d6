package models

import "fmt"

// Типы материалов печати
const (
	MaterialPLA = "PLA"
	MaterialPET = "PET"
	MaterialASA = "ASA"
)

// Типы качества печати
const (
	PrintThickStrong   = "ThickStrong"
	PrintThickSoft     = "ThickSoft"
	PrintPreciseStrong = "PreciseStrong"
	PrintPreciseSoft   = "PreciseSoft"
)

// ParseMaterialType - проверяет строку типа материала
func ParseMaterialType(material string) (string, error) {
	switch material {
	case MaterialPLA, MaterialPET, MaterialASA:
		return material, nil
	default:
		return "", fmt.Errorf("unknown material type: %s", material)
	}
}

// ParsePrintType - проверяет строку типа печати
func ParsePrintType(printType string) (string, error) {
	switch printType {
	case PrintThickStrong, PrintThickSoft, PrintPreciseStrong, PrintPreciseSoft:
		return printType, nil
	default:
		return "", fmt.Errorf("unknown print type: %s", printType)
	}
}

// OrderSubmission - заявка клиента на оценку заказа.
// Приходит первым текстовым сообщением в сессии загрузки,
// живёт до завершения или сброса сессии.
type OrderSubmission struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CopiesNbr    int    `json:"copies_nbr"`
	FileName     string `json:"file_name"`
	NbrOfChunks  int    `json:"nbr_of_chunks"`
	PrintType    string `json:"print_type"`
	MaterialType string `json:"material_type"`
}

// PrintingParameters - параметры печати, извлечённые из отчёта слайсера
type PrintingParameters struct {
	// Расчётное время печати в секундах
	TimeSeconds int64
	// Расход материала в миллиметрах
	MaterialMM int64
	// Тип материала заявки
	MaterialType string
}

// EvaluationResponse - сообщение с результатом оценки, отправляемое клиенту
type EvaluationResponse struct {
	Type         string  `json:"type"`
	Date         string  `json:"date"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	CopiesNbr    int     `json:"copies_nbr"`
	FileName     string  `json:"file_name"`
	Price        float64 `json:"price"`
	MaterialType string  `json:"material_type"`
	PrintType    string  `json:"print_type"`
	Status       string  `json:"status"`
	Message      string  `json:"message"`
}

// NewEvaluationResponse - преобразует заказ в сообщение с результатом оценки
func NewEvaluationResponse(order OrderData) EvaluationResponse {
	return EvaluationResponse{
		Type:         "evaluation_result",
		Date:         order.Date.UTC().Format(OrderDateLayout),
		Name:         order.Name,
		Email:        order.Email,
		CopiesNbr:    order.CopiesNbr,
		FileName:     order.FileName,
		Price:        order.Price.InexactFloat64(),
		MaterialType: order.MaterialType,
		PrintType:    order.PrintType,
		Status:       order.Status,
		Message:      "Evaluation completed successfully.",
	}
}
