package pricing

import (
	"testing"

	"github.com/denmor86/print-evaluator/internal/models"
	"github.com/shopspring/decimal"
)

func makeRates() RateTable {
	return RateTable{
		MaterialRatePLA:         60,
		MaterialRatePET:         70,
		MaterialRateASA:         80,
		HourlyRateTimeThreshold: [3]int64{0, 10, 100},
		HourlyRatePLAPrice:      [3]int64{30, 25, 20},
		HourlyRatePETPrice:      [3]int64{35, 30, 25},
		HourlyRateASAPrice:      [3]int64{40, 35, 30},
		FlatFee:                 1,
	}
}

func TestPrice(t *testing.T) {

	testCases := []struct {
		TestName      string
		Params        models.PrintingParameters
		Copies        int
		ExpectedPrice string
		ExpectError   bool
	}{
		{
			TestName: "Success. One hour PLA, seven copies #1",
			Params: models.PrintingParameters{
				TimeSeconds:  3600,
				MaterialMM:   1000,
				MaterialType: models.MaterialPLA,
			},
			Copies: 7,
			// 7 * (1000*60/100000 + 3600*30/3600) + 1
			ExpectedPrice: "215.2",
		},
		{
			TestName: "Success. Zero time and material cost only flat fee #2",
			Params: models.PrintingParameters{
				TimeSeconds:  0,
				MaterialMM:   0,
				MaterialType: models.MaterialPLA,
			},
			Copies:        3,
			ExpectedPrice: "1",
		},
		{
			TestName: "Success. Second tier rate for eleven hours #3",
			Params: models.PrintingParameters{
				TimeSeconds:  11 * 3600,
				MaterialMM:   0,
				MaterialType: models.MaterialPLA,
			},
			Copies: 1,
			// 11h * 25 + 1
			ExpectedPrice: "276",
		},
		{
			TestName: "Success. Third tier rate starts at threshold #4",
			Params: models.PrintingParameters{
				TimeSeconds:  100 * 3600,
				MaterialMM:   0,
				MaterialType: models.MaterialPET,
			},
			Copies: 1,
			// 100h * 25 + 1
			ExpectedPrice: "2501",
		},
		{
			TestName: "Success. ASA material rate #5",
			Params: models.PrintingParameters{
				TimeSeconds:  0,
				MaterialMM:   5000,
				MaterialType: models.MaterialASA,
			},
			Copies: 2,
			// 2 * 5000*80/100000 + 1
			ExpectedPrice: "9",
		},
		{
			TestName: "Error. Unknown material type #6",
			Params: models.PrintingParameters{
				TimeSeconds:  3600,
				MaterialMM:   1000,
				MaterialType: "WOOD",
			},
			Copies:      1,
			ExpectError: true,
		},
	}

	rates := makeRates()
	for _, testCase := range testCases {
		t.Run(testCase.TestName, func(t *testing.T) {
			price, err := Price(rates, testCase.Params, testCase.Copies)
			if testCase.ExpectError {
				if err == nil {
					t.Errorf("expected error, got price %s", price.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			expected := decimal.RequireFromString(testCase.ExpectedPrice)
			if !price.Equal(expected) {
				t.Errorf("expected price %s, got %s", expected.String(), price.String())
			}
		})
	}
}

func TestHourlyRate(t *testing.T) {
	thresholds := [3]int64{0, 10, 100}
	prices := [3]int64{30, 25, 20}

	testCases := []struct {
		TestName     string
		TimeSeconds  int64
		ExpectedRate int64
	}{
		{TestName: "First tier for zero time #1", TimeSeconds: 0, ExpectedRate: 30},
		{TestName: "First tier below second threshold #2", TimeSeconds: 10*3600 - 1, ExpectedRate: 30},
		{TestName: "Second tier at threshold #3", TimeSeconds: 10 * 3600, ExpectedRate: 25},
		{TestName: "Third tier for long jobs #4", TimeSeconds: 1000 * 3600, ExpectedRate: 20},
	}

	for _, testCase := range testCases {
		t.Run(testCase.TestName, func(t *testing.T) {
			rate := hourlyRate(thresholds, prices, testCase.TimeSeconds)
			if rate != testCase.ExpectedRate {
				t.Errorf("expected rate %d, got %d", testCase.ExpectedRate, rate)
			}
		})
	}
}
