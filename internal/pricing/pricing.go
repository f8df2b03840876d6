package pricing

import (
	"fmt"

	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/shopspring/decimal"
)

const (
	secondsPerHour = 3600
	// тариф на материал задан в минорных единицах валюты за 1000 мм
	materialRateScale = 100000
)

// materialRates - выбирает тариф на материал и массив почасовых тарифов для типа материала
func materialRates(rates RateTable, materialType string) (int64, [3]int64, error) {
	switch materialType {
	case models.MaterialPLA:
		return rates.MaterialRatePLA, rates.HourlyRatePLAPrice, nil
	case models.MaterialPET:
		return rates.MaterialRatePET, rates.HourlyRatePETPrice, nil
	case models.MaterialASA:
		return rates.MaterialRateASA, rates.HourlyRateASAPrice, nil
	default:
		return 0, [3]int64{}, fmt.Errorf("no rates for material type: %s", materialType)
	}
}

// hourlyRate - выбирает почасовой тариф по расчётному времени печати.
// Пороги заданы в часах по возрастанию, побеждает последний порог,
// не превышающий расчётное время (длинные заказы тарифицируются дешевле).
func hourlyRate(thresholds [3]int64, prices [3]int64, timeSeconds int64) int64 {
	rate := prices[0]
	for i, threshold := range thresholds {
		if timeSeconds >= threshold*secondsPerHour {
			rate = prices[i]
		}
	}
	return rate
}

// Price - рассчитывает цену заказа по параметрам печати и количеству копий.
// Цена единицы складывается из стоимости материала и стоимости времени печати,
// фиксированный сбор добавляется один раз на заказ.
func Price(rates RateTable, params models.PrintingParameters, copies int) (decimal.Decimal, error) {
	materialRate, hourlyPrices, err := materialRates(rates, params.MaterialType)
	if err != nil {
		return decimal.Zero, err
	}

	materialCost := decimal.NewFromInt(params.MaterialMM * materialRate).
		Div(decimal.NewFromInt(materialRateScale))

	rate := hourlyRate(rates.HourlyRateTimeThreshold, hourlyPrices, params.TimeSeconds)
	timeCost := decimal.NewFromInt(params.TimeSeconds * rate).
		Div(decimal.NewFromInt(secondsPerHour))

	unitPrice := materialCost.Add(timeCost)
	total := unitPrice.Mul(decimal.NewFromInt(int64(copies))).
		Add(decimal.NewFromInt(rates.FlatFee))

	return total, nil
}
