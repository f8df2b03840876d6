package pricing

import (
	"encoding/json"
	"fmt"
	"os"
)

// RateTable - таблица тарифов печати.
// Загружается один раз при старте сервиса и далее не изменяется.
// Тарифы на материал заданы в минорных единицах валюты за 1000 мм,
// почасовые тарифы - в основных единицах валюты, пороги - в часах.
type RateTable struct {
	MaterialRatePLA         int64    `json:"material_rate_pla"`
	MaterialRatePET         int64    `json:"material_rate_pet"`
	MaterialRateASA         int64    `json:"material_rate_asa"`
	HourlyRateTimeThreshold [3]int64 `json:"hourly_rate_time_threshold"`
	HourlyRatePLAPrice      [3]int64 `json:"hourly_rate_pla_price"`
	HourlyRatePETPrice      [3]int64 `json:"hourly_rate_pet_price"`
	HourlyRateASAPrice      [3]int64 `json:"hourly_rate_asa_price"`
	FlatFee                 int64    `json:"flat_fee"`
}

// LoadRateTable - читает таблицу тарифов из JSON-файла
func LoadRateTable(path string) (RateTable, error) {
	var rates RateTable
	data, err := os.ReadFile(path)
	if err != nil {
		return rates, fmt.Errorf("failed to read rate table: %w", err)
	}
	if err := json.Unmarshal(data, &rates); err != nil {
		return rates, fmt.Errorf("failed to parse rate table: %w", err)
	}
	return rates, nil
}
